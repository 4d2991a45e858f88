package http

import (
	"net/http"

	"github.com/eduflex-lms/backend/quiz"
	"github.com/eduflex-lms/backend/user"
	"github.com/eduflex-lms/backend/user/auth"
	"github.com/go-chi/chi/v5"
)

type QuizHttpHandler struct {
	quizSrvc *quiz.QuizSrvc
}

func NewQuizHttpHandler(quizSrvc *quiz.QuizSrvc) *QuizHttpHandler {
	return &QuizHttpHandler{quizSrvc: quizSrvc}
}

func (h *QuizHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/quizzes", h.CreateQuiz)
	r.Get("/courses/{courseId}/quizzes", h.ListForCourse)
	r.Get("/quizzes/{quizId}", h.GetQuiz)
	r.Post("/quizzes/{quizId}/submit", h.TakeQuiz)
}

func actorFromRequest(r *http.Request) (user.Actor, bool) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		return user.Actor{}, false
	}
	return user.Actor{ID: claims.UUID, Role: claims.Role}, true
}
