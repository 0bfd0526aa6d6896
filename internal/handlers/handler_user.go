package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/dto"
	"github.com/nairvarun/clipstream_backend/internal/middleware"
)

// UserHandler handles the authenticated user operations.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// registerUserRoutes sets up the protected user routes. The group must carry
// the auth middleware.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	rg.PATCH("/updatePassword", h.UpdatePassword)
	rg.GET("/logout", h.Logout)
	rg.GET("/me", h.Me)
}

// UpdatePassword godoc
// @Summary Change the caller's password
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body dto.UpdatePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/updatePassword [patch]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{}, "Password updated successfully")
}

// Logout godoc
// @Summary Log the caller out
// @Description Clears the stored refresh token (unconditional revocation) and expires both cookies.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/logout [get]
func (h *UserHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	clearAuthCookies(c)
	respondSuccess(c, http.StatusOK, gin.H{}, "User logged out successfully")
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewAPIError(http.StatusUnauthorized, "Unauthorized request"))
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}
