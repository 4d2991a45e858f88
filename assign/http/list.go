package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
)

func (h *AssignHttpHandler) ListForStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	views, err := h.assignSrvc.ListForStudent(r.Context(), actor.ID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	out := make([]StudentAssignment, 0, len(views))
	for _, v := range views {
		out = append(out, StudentAssignment{
			AssignmentID:  v.AssignmentID,
			Title:         v.Title,
			Description:   v.Description,
			CourseID:      v.CourseID,
			DueDate:       v.DueDate,
			AttachmentUrl: v.AttachmentUrl,
			Status:        v.Status,
			Grade:         v.Grade,
			Feedback:      v.Feedback,
			SubmittedAt:   v.SubmittedAt,
		})
	}

	httpjson.WriteSuccessJson(w, out)
}

// ListForInstructor serves the grading UI. The response is cached briefly
// per instructor and collapsed with singleflight because the grading view
// polls it.
func (h *AssignHttpHandler) ListForInstructor(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	cacheKey := instructorCacheKey(actor.ID)
	if cached, ok := h.cache.Get(cacheKey); ok {
		httpjson.WriteSuccessJson(w, cached)
		return
	}

	result, err, _ := h.sfGroup.Do(cacheKey, func() (interface{}, error) {
		assignments, err := h.assignSrvc.ListForInstructor(r.Context(), actor.ID)
		if err != nil {
			return nil, err
		}
		mapped := mapAssignments(assignments)
		h.cache.Set(cacheKey, mapped, 0)
		return mapped, nil
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result)
}

func (h *AssignHttpHandler) ListForCourse(w http.ResponseWriter, r *http.Request) {
	courseId := chi.URLParam(r, "courseId")

	assignments, err := h.assignSrvc.ListForCourse(r.Context(), courseId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAssignments(assignments))
}
