package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	router, _ := setupRouter(t)
	adminToken(t)

	resp := performJSON(router, http.MethodPost, "/login", map[string]string{
		"email":    "admin@radam.com",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, resp.Code)

	body := decodeBody(t, resp)
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// the issued token authenticates subsequent requests
	me := performJSON(router, http.MethodGet, "/me", nil, token)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "admin@radam.com")
	assert.NotContains(t, me.Body.String(), "password")
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	router, _ := setupRouter(t)
	adminToken(t)

	wrongPassword := performJSON(router, http.MethodPost, "/login", map[string]string{
		"email":    "admin@radam.com",
		"password": "not-the-password",
	}, "")
	unknownEmail := performJSON(router, http.MethodPost, "/login", map[string]string{
		"email":    "nobody@radam.com",
		"password": "admin123",
	}, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performJSON(router, http.MethodPost, "/login", map[string]string{"email": "admin@radam.com"}, "")
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMeRequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performJSON(router, http.MethodGet, "/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performJSON(router, http.MethodGet, "/me", nil, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
