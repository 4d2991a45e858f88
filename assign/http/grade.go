package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/assign"
	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func (h *AssignHttpHandler) Grade(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	assignmentId := chi.URLParam(r, "assignmentId")

	type gradeRequest struct {
		StudentID string   `json:"studentId" validate:"required"`
		Grade     *float64 `json:"grade" validate:"required"`
		Feedback  *string  `json:"feedback"`
	}

	var request gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&request); err != nil {
		httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_request_body")
		return
	}

	result, err := h.assignSrvc.Grade(r.Context(), assignmentId, actor, assign.GradeParams{
		StudentID: request.StudentID,
		Grade:     *request.Grade,
		Feedback:  request.Feedback,
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	// the grading list must reflect this grade on the next reload
	h.cache.Delete(instructorCacheKey(actor.ID))

	type gradeResponse struct {
		AssignmentID string     `json:"assignmentId"`
		Submission   Submission `json:"submission"`
	}

	httpjson.WriteSuccessJson(w, gradeResponse{
		AssignmentID: result.AssignmentID,
		Submission:   mapSubmission(result.Submission),
	})
}
