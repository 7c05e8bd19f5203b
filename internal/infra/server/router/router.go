// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	interchangeController *controller.InterchangeController
	dashboardController   *controller.DashboardController
	suggestionController  *controller.SuggestionController
	categoryController    *controller.CategoryController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	interchangeController *controller.InterchangeController,
	dashboardController *controller.DashboardController,
	suggestionController *controller.SuggestionController,
	categoryController *controller.CategoryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		interchangeController: interchangeController,
		dashboardController:   dashboardController,
		suggestionController:  suggestionController,
		categoryController:    categoryController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
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
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/google", r.loginRateLimiter.Middleware(), r.authController.GoogleLogin)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
				transactions.POST("/validate", r.transactionController.Validate)

				// Import/export routes (nested under transactions)
				if r.interchangeController != nil {
					transactions.POST("/import", r.interchangeController.Import)
					transactions.GET("/export", r.interchangeController.Export)
				}
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
				dashboard.GET("/categories", r.dashboardController.GetCategoryBreakdown)
			}
		}

		// Suggestion routes (require authentication)
		if r.suggestionController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.POST("/category", r.suggestionController.SuggestCategory)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("/suggested", r.categoryController.ListSuggested)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
