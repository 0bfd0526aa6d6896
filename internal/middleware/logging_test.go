package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	var sawLogger bool
	r.GET("/ping", func(c *gin.Context) {
		// The request-scoped logger is reachable from the plain context.
		sawLogger = GetLoggerFromCtx(c.Request.Context()) != slog.Default()
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sawLogger)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	logger := GetLoggerFromCtx(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, slog.Default(), logger)
}

func TestGetUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserIDFromContext(c)
	assert.False(t, ok)

	ctx := context.WithValue(c.Request.Context(), userIDKey, "u-1")
	c.Request = c.Request.WithContext(ctx)

	userID, ok := GetUserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "u-1", userID)
}

func TestExtractAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *http.Request) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request = req
		return c, req
	}

	c, req := newCtx()
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	assert.Equal(t, "cookie-token", extractAccessToken(c))

	c, req = newCtx()
	req.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "header-token", extractAccessToken(c))

	// Cookie takes precedence over the header.
	c, req = newCtx()
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "cookie-token", extractAccessToken(c))

	c, req = newCtx()
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	assert.Empty(t, extractAccessToken(c))

	c, _ = newCtx()
	assert.Empty(t, extractAccessToken(c))
}
