package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/course"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func (h *CourseHttpHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	type createCourseRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	var request createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&request); err != nil {
		httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_request_body")
		return
	}

	created, err := h.courseSrvc.CreateCourse(r.Context(), actor, course.CreateCourseParams{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCourse(created))
}

func (h *CourseHttpHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseId := chi.URLParam(r, "courseId")

	found, err := h.courseSrvc.GetCourse(r.Context(), courseId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCourse(found))
}

func (h *CourseHttpHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	courseId := chi.URLParam(r, "courseId")

	type updateCourseRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	var request updateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := h.courseSrvc.UpdateCourse(r.Context(), actor, courseId, course.UpdateCourseParams{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCourse(updated))
}

func (h *CourseHttpHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	courseId := chi.URLParam(r, "courseId")

	if err := h.courseSrvc.DeleteCourse(r.Context(), actor, courseId); err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"message": "course deleted"})
}
