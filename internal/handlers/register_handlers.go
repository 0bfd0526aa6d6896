package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nairvarun/clipstream_backend/cmd/docs"
	portssvc "github.com/nairvarun/clipstream_backend/internal/core/ports/services"
	"github.com/nairvarun/clipstream_backend/internal/middleware"
	"github.com/nairvarun/clipstream_backend/internal/platform/config"
	"github.com/nairvarun/clipstream_backend/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	users := r.Group("/api/v1/users")

	// Public session routes (register, login, refresh)
	registerAuthRoutes(users, cfg, services, posthog)

	// Protected routes behind access-token verification
	protected := users.Group("", middleware.AuthMiddleware(services.Token, services.User))
	registerUserRoutes(protected, services.User)

	// Swagger routes (not available in production)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
