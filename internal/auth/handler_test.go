package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestHandler() *Handler {
	service, _ := newTestAuthService()
	return NewHandler(service)
}

func postJSON(handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	handler(recorder, req)
	return recorder
}

func TestHandleRegister(t *testing.T) {
	handler := newTestHandler()

	recorder := postJSON(handler.HandleRegister, "/api/register",
		`{"name":"John","email":"john@example.com","password":"SuperSecret1"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	registered := data["user"].(map[string]interface{})
	assert.Equal(t, "john@example.com", registered["email"])
	// the hash never leaves the server
	_, leaked := registered["password_hash"]
	assert.False(t, leaked)
}

func TestHandleRegister_Failures(t *testing.T) {
	handler := newTestHandler()

	for _, tc := range []struct {
		name, body string
		expected   int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"missing name", `{"email":"john@example.com","password":"SuperSecret1"}`, http.StatusBadRequest},
		{"bad email", `{"name":"John","email":"nope","password":"SuperSecret1"}`, http.StatusBadRequest},
		{"short password", `{"name":"John","email":"john@example.com","password":"short"}`, http.StatusBadRequest},
	} {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postJSON(handler.HandleRegister, "/api/register", tc.body)
			assert.Equal(t, tc.expected, recorder.Code)
		})
	}
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	handler := newTestHandler()

	first := postJSON(handler.HandleRegister, "/api/register",
		`{"name":"John","email":"john@example.com","password":"SuperSecret1"}`)
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(handler.HandleRegister, "/api/register",
		`{"name":"Johnny","email":"john@example.com","password":"AnotherSecret1"}`)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestHandleLogin(t *testing.T) {
	handler := newTestHandler()
	created := postJSON(handler.HandleRegister, "/api/register",
		`{"name":"John","email":"john@example.com","password":"SuperSecret1"}`)
	assert.Equal(t, http.StatusCreated, created.Code)

	recorder := postJSON(handler.HandleLogin, "/api/auth/login",
		`{"email":"john@example.com","password":"SuperSecret1"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	handler := newTestHandler()
	postJSON(handler.HandleRegister, "/api/register",
		`{"name":"John","email":"john@example.com","password":"SuperSecret1"}`)

	for _, tc := range []struct {
		name, body string
	}{
		{"wrong password", `{"email":"john@example.com","password":"WrongSecret1"}`},
		{"unknown email", `{"email":"ghost@example.com","password":"SuperSecret1"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postJSON(handler.HandleLogin, "/api/auth/login", tc.body)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
