// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lifehub/backend/internal/infra/observability"
	"github.com/lifehub/backend/internal/integration/entrypoint/controller"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	userController        *controller.UserController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	financeGoalController *controller.FinanceGoalController
	habitController       *controller.HabitController
	assistantController   *controller.AssistantController
	summaryController     *controller.SummaryController
	syncController        *controller.SyncController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	financeGoalController *controller.FinanceGoalController,
	habitController *controller.HabitController,
	assistantController *controller.AssistantController,
	summaryController *controller.SummaryController,
	syncController *controller.SyncController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		userController:        userController,
		categoryController:    categoryController,
		transactionController: transactionController,
		goalController:        goalController,
		financeGoalController: financeGoalController,
		habitController:       habitController,
		assistantController:   assistantController,
		summaryController:     summaryController,
		syncController:        syncController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(observability.MetricsMiddleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Profile routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.GetProfile)
				users.PATCH("/me", r.userController.UpdateProfile)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.POST("/import", r.transactionController.Import)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Goal routes with the progress ledger (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.PATCH("/:id/status", r.goalController.UpdateStatus)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/progress", r.goalController.AddProgress)
				goals.DELETE("/:id/progress/:entryId", r.goalController.DeleteProgress)
			}
		}

		// Finance goal routes (require authentication)
		if r.financeGoalController != nil && r.authMiddleware != nil {
			financeGoals := v1.Group("/finance-goals")
			financeGoals.Use(r.authMiddleware.Authenticate())
			{
				financeGoals.GET("", r.financeGoalController.List)
				financeGoals.POST("", r.financeGoalController.Create)
				financeGoals.PATCH("/:id", r.financeGoalController.Update)
				financeGoals.DELETE("/:id", r.financeGoalController.Delete)
			}
		}

		// Habit routes with the check-in ledger (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
				habits.POST("/:id/checkin", r.habitController.ToggleCheckin)
			}
		}

		// Assistant routes (require authentication)
		if r.assistantController != nil && r.authMiddleware != nil {
			assistant := v1.Group("/assistant")
			assistant.Use(r.authMiddleware.Authenticate())
			{
				assistant.POST("/message", r.assistantController.HandleMessage)
			}
		}

		// Summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summaries := v1.Group("/summaries")
			summaries.Use(r.authMiddleware.Authenticate())
			{
				summaries.GET("/goals", r.summaryController.GoalsSummary)
				summaries.GET("/habits", r.summaryController.HabitsSummary)
			}
		}

		// Sync routes (require authentication)
		if r.syncController != nil && r.authMiddleware != nil {
			syncGroup := v1.Group("/sync")
			syncGroup.Use(r.authMiddleware.Authenticate())
			{
				syncGroup.POST("/reconcile", r.syncController.Reconcile)
			}
		}
	}
}
