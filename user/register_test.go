package user_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/eduflex-lms/backend/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHttp(t *testing.T) {
	h := setupUserHttpHandler(t)

	t.Run("Valid Registration", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
			"role":     "professor",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Status string `json:"status"`
			Data   struct {
				UUID     string `json:"uuid"`
				Username string `json:"username"`
				Email    string `json:"email"`
				Role     string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Status)
		assert.NotEmpty(t, response.Data.UUID)
		assert.Equal(t, "alice", response.Data.Username)
		assert.Equal(t, "professor", response.Data.Role)
	})

	t.Run("Default Role Is Student", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "bob",
			"email":    "bob@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Data struct {
				Role string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "student", response.Data.Role)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "alice",
			"email":    "alice2@example.com",
			"password": "password123",
		})
		assertErrorInHttpResponse(t, w, user.ErrCodeUsernameAlreadyExists)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "password123",
		})
		assertErrorInHttpResponse(t, w, user.ErrCodeEmailAlreadyExists)
	})

	t.Run("Short Username", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "a",
			"email":    "short@example.com",
			"password": "password123",
		})
		assertErrorInHttpResponse(t, w, user.ErrCodeUsernameTooShort)
	})

	t.Run("Short Password", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "charlie",
			"email":    "charlie@example.com",
			"password": "short",
		})
		assertErrorInHttpResponse(t, w, user.ErrCodePasswordTooShort)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "charlie",
			"email":    "not-an-email",
			"password": "password123",
		})
		assertErrorInHttpResponse(t, w, "invalid_request_body")
	})

	t.Run("Unknown Role Rejected", func(t *testing.T) {
		w := register(t, h, map[string]interface{}{
			"username": "charlie",
			"email":    "charlie@example.com",
			"password": "password123",
			"role":     "superuser",
		})
		assertErrorInHttpResponse(t, w, "invalid_request_body")
	})
}
