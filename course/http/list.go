package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
)

func (h *CourseHttpHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseSrvc.ListCourses(r.Context())
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(courses))
}

func (h *CourseHttpHandler) ListMyCourses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	courses, err := h.courseSrvc.ListCoursesForStudent(r.Context(), actor.ID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(courses))
}

func (h *CourseHttpHandler) ListOwnedCourses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	courses, err := h.courseSrvc.ListCoursesForProfessor(r.Context(), actor.ID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(courses))
}
