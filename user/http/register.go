package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/eduflex-lms/backend/user"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		Role     string `json:"role" validate:"omitempty,oneof=student professor admin"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(&request); err != nil {
		httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_request_body")
		return
	}

	created, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:     created.UUID,
		Username: created.Username,
		Email:    created.Email,
		Role:     created.Role,
	})
}
