package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := AuthMiddleware()
	if optional {
		mw = OptionalAuthMiddleware()
	}
	router.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": RequesterEmail(c)})
	})
	return router
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	token, err := GenerateToken(42, "admin@radam.com")
	require.NoError(t, err)

	w := get(protectedRouter(false), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@radam.com")
}

func TestAuthMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	router := protectedRouter(false)

	w := get(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(router, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	t.Setenv("JWT_EXPIRY_HOURS", "-1")
	token, err := GenerateToken(42, "admin@radam.com")
	require.NoError(t, err)

	w := get(protectedRouter(false), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(42, "admin@radam.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	w := get(protectedRouter(false), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-123")
	router := protectedRouter(true)

	w := get(router, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":""`)

	// invalid tokens degrade to anonymous instead of failing
	w = get(router, "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":""`)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := GenerateToken(1, "a@x.com")
	assert.Error(t, err)
}
