package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/go-chi/chi/v5"
)

func (h *QuizHttpHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	quizId := chi.URLParam(r, "quizId")

	found, err := h.quizSrvc.GetQuiz(r.Context(), quizId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	withAnswers := h.maySeeAnswers(r.Context(), found.CourseID, actor)
	httpjson.WriteSuccessJson(w, mapQuiz(found, withAnswers))
}

func (h *QuizHttpHandler) ListForCourse(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		httpjson.WriteErrorJson(w, "authentication required", http.StatusUnauthorized, "unauthorized")
		return
	}
	courseId := chi.URLParam(r, "courseId")

	quizzes, err := h.quizSrvc.ListForCourse(r.Context(), courseId)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	withAnswers := h.maySeeAnswers(r.Context(), courseId, actor)
	out := make([]Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, mapQuiz(q, withAnswers))
	}

	httpjson.WriteSuccessJson(w, out)
}
