// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmate/backend/internal/integration/entrypoint/controller"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	quickEntryController *controller.QuickEntryController
	entryController      *controller.EntryController
	optionsController    *controller.OptionsController
	reportController     *controller.ReportController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	quickEntryController *controller.QuickEntryController,
	entryController *controller.EntryController,
	optionsController *controller.OptionsController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		quickEntryController: quickEntryController,
		entryController:      entryController,
		optionsController:    optionsController,
		reportController:     reportController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		if r.quickEntryController != nil && r.authMiddleware != nil {
			quickEntry := v1.Group("/quick-entry")
			quickEntry.Use(r.authMiddleware.Authenticate())
			{
				quickEntry.POST("/parse", r.quickEntryController.Parse)
			}
		}

		if r.entryController != nil && r.authMiddleware != nil {
			entries := v1.Group("/entries")
			entries.Use(r.authMiddleware.Authenticate())
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.DELETE("/:id", r.entryController.Delete)
			}
		}

		if r.optionsController != nil && r.authMiddleware != nil {
			options := v1.Group("/options")
			options.Use(r.authMiddleware.Authenticate())
			{
				options.GET("", r.optionsController.List)
				options.PUT("/:field", r.optionsController.Update)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/pnl", r.reportController.ProfitLoss)
				reports.POST("/pnl/email", r.reportController.Email)
			}
		}
	}
}
