package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
)

func (h *CourseHttpHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	courseId := chi.URLParam(r, "courseId")

	enrolled, err := h.courseSrvc.Enroll(r.Context(), actor, courseId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapCourse(enrolled))
}
