package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nairvarun/clipstream_backend/internal/apperrors"
	"github.com/nairvarun/clipstream_backend/internal/dto"
	"github.com/nairvarun/clipstream_backend/internal/middleware"
)

// respondSuccess renders the standard success envelope.
func respondSuccess(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, dto.NewAPIResponse(statusCode, data, message))
}

// respondError maps a service error onto the taxonomy's HTTP status and
// renders the standard error envelope. Unexpected errors become a generic 500.
func respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", slog.String("error", err.Error()))
	}
	c.JSON(status, dto.NewAPIError(status, message))
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "User does not exist"
	case errors.Is(err, apperrors.ErrAuthentication):
		return http.StatusUnauthorized, "Invalid user credentials"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized request"
	case errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, apperrors.ErrTokenReuse):
		return http.StatusUnauthorized, "Refresh token is expired or already used"
	case errors.Is(err, apperrors.ErrUpload):
		return http.StatusInternalServerError, "Media upload failed"
	case errors.Is(err, apperrors.ErrTokenPersistence):
		return http.StatusInternalServerError, "Could not generate access and refresh tokens"
	case errors.Is(err, apperrors.ErrPersistence):
		return http.StatusInternalServerError, "Persistence failure"
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}
