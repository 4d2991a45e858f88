package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
)

func (h *QuizHttpHandler) TakeQuiz(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	quizId := chi.URLParam(r, "quizId")

	type takeRequest struct {
		Answers []int `json:"answers"`
	}

	var request takeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.quizSrvc.Take(r.Context(), quizId, actor, request.Answers)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	type takeResponse struct {
		QuizID string `json:"quizId"`
		Score  int    `json:"score"`
		Total  int    `json:"total"`
	}

	httpjson.WriteSuccessJson(w, takeResponse{
		QuizID: result.QuizID,
		Score:  result.Score,
		Total:  result.Total,
	})
}
