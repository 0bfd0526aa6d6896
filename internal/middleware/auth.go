package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/dto"
)

// AccessTokenCookie and RefreshTokenCookie are the cookie names shared by the
// auth middleware and the auth handlers.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// AuthMiddleware validates the access token (from the accessToken cookie or
// an Authorization: Bearer header), checks that the referenced user still
// exists and attaches its ID to the request context. Protected routes run
// behind this.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, userSvc portssvc.UserSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString := extractAccessToken(c)
		if tokenString == "" {
			logger.Warn("Access token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
			return
		}

		userID, err := tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			logger.Warn("Invalid access token", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Invalid or expired access token"))
			return
		}

		// Existence check only: no user record (and no credential fields)
		// leaves the store here.
		exists, err := userSvc.UserExists(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to check user for access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewAPIError(http.StatusInternalServerError, "Something went wrong"))
			return
		}
		if !exists {
			logger.Warn("Access token references unknown user", slog.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}

// extractAccessToken prefers the cookie and falls back to the Authorization
// header.
func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
