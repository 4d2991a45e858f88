package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoAmIHttp(t *testing.T) {
	h := setupUserHttpHandler(t)

	token := registerAndLogin(t, h, "alice", "student")

	t.Run("With Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var response struct {
			Status string `json:"status"`
			Data   struct {
				Username string `json:"username"`
				Email    string `json:"email"`
				Role     string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "success", response.Status)
		assert.Equal(t, "alice", response.Data.Username)
		assert.Equal(t, "alice@example.com", response.Data.Email)
		assert.Equal(t, "student", response.Data.Role)
	})

	t.Run("Without Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusOK, w.Code)
	})
}
