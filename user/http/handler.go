package http

import (
	"github.com/eduflex-lms/backend/user"
	"github.com/go-chi/chi/v5"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/users", h.Register)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/whoami", h.WhoAmI)
}
