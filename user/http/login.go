package http

import (
	"encoding/json"
	"net/http"

	"github.com/eduflex-lms/backend/httpjson"
	"github.com/eduflex-lms/backend/logger"
	"github.com/eduflex-lms/backend/user/auth"
	"github.com/google/uuid"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	loggedIn, err := h.userSrvc.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	userUuid, err := uuid.Parse(loggedIn.UUID)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	token, err := auth.GenerateJWT(loggedIn.Username, loggedIn.Email, userUuid, loggedIn.Role, h.JwtKey)
	if err != nil {
		httpjson.HandleSrvcError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, token)
}
