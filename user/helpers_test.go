package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eduflex-lms/backend/user"
	"github.com/eduflex-lms/backend/user/auth"
	userhttp "github.com/eduflex-lms/backend/user/http"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test")

func setupUserHttpHandler(t *testing.T) http.Handler {
	t.Helper()
	userSrvc := user.NewUserService(user.NewInMemUserRepo())
	userHandler := userhttp.NewUserHttpHandler(userSrvc, testJwtKey)
	router := chi.NewRouter()
	router.Use(auth.GetJwtAuthMiddleware(testJwtKey))
	userHandler.RegisterRoutes(router)
	return router
}

func newJsonReq(t *testing.T, method, path string, body map[string]interface{}) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func register(t *testing.T, handler http.Handler, userData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := newJsonReq(t, http.MethodPost, "/users", userData)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, handler http.Handler, loginData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := newJsonReq(t, http.MethodPost, "/auth/login", loginData)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user with the given role and returns a bearer
// token for it.
func registerAndLogin(t *testing.T, handler http.Handler, username, role string) string {
	t.Helper()
	w := register(t, handler, map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, "register failed: %s", w.Body.String())

	w = login(t, handler, map[string]interface{}{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data)
	return response.Data
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
