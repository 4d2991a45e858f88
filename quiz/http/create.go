package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/eduflex-lms/backend/quiz"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func (h *QuizHttpHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}

	type questionRequest struct {
		Text          string   `json:"text" validate:"required"`
		Options       []string `json:"options" validate:"required,min=2"`
		CorrectOption *int     `json:"correctOption" validate:"required"`
	}
	type createQuizRequest struct {
		Title     string            `json:"title" validate:"required"`
		CourseID  string            `json:"courseId" validate:"required"`
		Questions []questionRequest `json:"questions" validate:"required,min=1,dive"`
	}

	var request createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&request); err != nil {
		httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_request_body")
		return
	}

	questions := make([]quiz.Question, 0, len(request.Questions))
	for _, q := range request.Questions {
		questions = append(questions, quiz.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: *q.CorrectOption,
		})
	}

	created, err := h.quizSrvc.CreateQuiz(r.Context(), actor, quiz.CreateQuizParams{
		Title:     request.Title,
		CourseID:  request.CourseID,
		Questions: questions,
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapQuiz(created, true))
}
