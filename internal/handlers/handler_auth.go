package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/dto"
	"github.com/nairvarun/clipstream_backend/internal/middleware"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
	"github.com/nairvarun/clipstream_backend/internal/utils"
)

// AuthHandler handles the unauthenticated session operations: registration,
// login and refresh-token rotation.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
	posthog      *utils.PosthogClientWrapper
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config, posthog *utils.PosthogClientWrapper) *AuthHandler {
	return &AuthHandler{
		userService:  services.User,
		tokenService: services.Token,
		cfg:          cfg,
		posthog:      posthog,
	}
}

// registerAuthRoutes sets up the public session routes.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) {
	h := NewAuthHandler(services, cfg, posthog)

	// Rate limit login attempts: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	rg.POST("/register", h.Register)
	rg.POST("/login", limitMiddleware, h.Login)
	rg.POST("/refreshAccessToken", h.RefreshAccessToken)
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user account from a multipart form with a mandatory avatar image and an optional cover image.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param fullname formData string true "Full name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	// Stage the uploaded files locally; the temp files are removed on every
	// exit path, whether the upload succeeds or not.
	if avatarFile, err := c.FormFile("avatar"); err == nil {
		localPath, err := h.saveTempUpload(c, avatarFile)
		if err != nil {
			respondError(c, err)
			return
		}
		defer os.Remove(localPath)
		req.AvatarLocalPath = localPath
	}
	if coverFile, err := c.FormFile("coverImage"); err == nil {
		localPath, err := h.saveTempUpload(c, coverFile)
		if err != nil {
			respondError(c, err)
			return
		}
		defer os.Remove(localPath)
		req.CoverImageLocalPath = localPath
	}

	created, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.posthog.Enqueue(created.UserID, "user_registered", map[string]any{"username": created.Username})

	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(created), "User created successfully")
}

// Login godoc
// @Summary User login
// @Description Authenticates by username or email and issues an access/refresh token pair as secure cookies and in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(http.StatusBadRequest, "Invalid request body"))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, refreshToken, err := h.tokenService.IssueTokenPair(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, h.cfg, accessToken, refreshToken)
	h.posthog.Enqueue(user.UserID, "user_logged_in", nil)

	respondSuccess(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "User logged in successfully")
}

// RefreshAccessToken godoc
// @Summary Rotate the token pair
// @Description Verifies the presented refresh token (cookie or body), detects reuse and issues a fresh access/refresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token (optional, cookie is preferred)"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /users/refreshAccessToken [post]
func (h *AuthHandler) RefreshAccessToken(c *gin.Context) {
	presented, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || presented == "" {
		var req dto.RefreshTokenRequest
		// Body is optional; a missing or malformed body just means no token.
		_ = c.ShouldBindJSON(&req)
		presented = req.RefreshToken
	}

	_, accessToken, refreshToken, err := h.tokenService.RefreshSession(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, h.cfg, accessToken, refreshToken)

	respondSuccess(c, http.StatusOK, dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Refreshed access token successfully")
}

// saveTempUpload stores a multipart file under a random name in the OS temp
// directory.
func (h *AuthHandler) saveTempUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	localPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

// setAuthCookies sets both tokens as HttpOnly, Secure cookies.
func setAuthCookies(c *gin.Context, cfg *config.Config, accessToken, refreshToken string) {
	c.SetCookie(middleware.AccessTokenCookie, accessToken, int(cfg.AccessTokenExpiryDuration.Seconds()), "/", "", true, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, int(cfg.RefreshTokenExpiryDuration.Seconds()), "/", "", true, true)
}

// clearAuthCookies expires both token cookies.
func clearAuthCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", true, true)
}
