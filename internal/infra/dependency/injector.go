// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lifehub/backend/config"
	"github.com/lifehub/backend/internal/application/usecase/assistant"
	"github.com/lifehub/backend/internal/application/usecase/auth"
	"github.com/lifehub/backend/internal/application/usecase/category"
	"github.com/lifehub/backend/internal/application/usecase/financegoal"
	"github.com/lifehub/backend/internal/application/usecase/goal"
	"github.com/lifehub/backend/internal/application/usecase/habit"
	"github.com/lifehub/backend/internal/application/usecase/summary"
	"github.com/lifehub/backend/internal/application/usecase/sync"
	"github.com/lifehub/backend/internal/application/usecase/transaction"
	"github.com/lifehub/backend/internal/infra/observability"
	"github.com/lifehub/backend/internal/infra/server/router"
	"github.com/lifehub/backend/internal/integration/adapters"
	"github.com/lifehub/backend/internal/integration/cache"
	"github.com/lifehub/backend/internal/integration/entrypoint/controller"
	"github.com/lifehub/backend/internal/integration/entrypoint/middleware"
	"github.com/lifehub/backend/internal/integration/notification"
	"github.com/lifehub/backend/internal/integration/notification/templates"
	"github.com/lifehub/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config             *config.Config
	DB                 *gorm.DB
	Router             *router.Router
	NotificationWorker *notification.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	financeGoalRepo := persistence.NewFinanceGoalRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	notificationQueueRepo := persistence.NewNotificationQueueRepository(db)

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	assistantService := adapters.NewGeminiAssistant(cfg.Assistant.GeminiAPIKey, cfg.Assistant.GeminiModel)
	cacheInvalidator := cache.NewRedisInvalidator(redisClient)

	// Cross-entity sync orchestrator with milestone metrics
	syncOrchestrator := sync.NewOrchestrator(
		goalRepo,
		financeGoalRepo,
		transactionRepo,
		observability.NewMilestoneMetrics(),
	)
	milestoneNotifier := transaction.NewMilestoneNotifier(userRepo, notificationQueueRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, notificationQueueRepo, cfg.Notification.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := auth.NewUpdateProfileUseCase(userRepo)

	// Category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, syncOrchestrator, milestoneNotifier, cacheInvalidator)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, syncOrchestrator, milestoneNotifier, cacheInvalidator)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, syncOrchestrator, milestoneNotifier, cacheInvalidator)
	importTransactionsUseCase := transaction.NewImportTransactionsUseCase(transactionRepo, categoryRepo, syncOrchestrator, milestoneNotifier, cacheInvalidator)

	// Goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, syncOrchestrator, cacheInvalidator)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, syncOrchestrator, cacheInvalidator)
	updateGoalStatusUseCase := goal.NewUpdateGoalStatusUseCase(goalRepo, syncOrchestrator, cacheInvalidator)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, syncOrchestrator, cacheInvalidator)
	addProgressUseCase := goal.NewAddProgressUseCase(goalRepo, syncOrchestrator, cacheInvalidator)
	deleteProgressUseCase := goal.NewDeleteProgressUseCase(goalRepo, syncOrchestrator, cacheInvalidator)

	// Finance goal use cases
	createFinanceGoalUseCase := financegoal.NewCreateFinanceGoalUseCase(financeGoalRepo, syncOrchestrator, cacheInvalidator)
	listFinanceGoalsUseCase := financegoal.NewListFinanceGoalsUseCase(financeGoalRepo)
	updateFinanceGoalUseCase := financegoal.NewUpdateFinanceGoalUseCase(financeGoalRepo, syncOrchestrator, cacheInvalidator)
	deleteFinanceGoalUseCase := financegoal.NewDeleteFinanceGoalUseCase(financeGoalRepo, syncOrchestrator, cacheInvalidator)

	// Habit use cases
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo, cacheInvalidator)
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo, userRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo, cacheInvalidator)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo, cacheInvalidator)
	toggleCheckinUseCase := habit.NewToggleCheckinUseCase(habitRepo, userRepo, cacheInvalidator)

	// Assistant and summaries
	handleMessageUseCase := assistant.NewHandleMessageUseCase(assistantService, goalRepo, habitRepo, addProgressUseCase, toggleCheckinUseCase)
	goalsSummaryUseCase := summary.NewGoalsSummaryUseCase(goalRepo, cacheInvalidator)
	habitsSummaryUseCase := summary.NewHabitsSummaryUseCase(listHabitsUseCase, cacheInvalidator)

	// Controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)
	userController := controller.NewUserController(getProfileUseCase, updateProfileUseCase)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		importTransactionsUseCase,
	)
	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		updateGoalStatusUseCase,
		deleteGoalUseCase,
		addProgressUseCase,
		deleteProgressUseCase,
	)
	financeGoalController := controller.NewFinanceGoalController(
		createFinanceGoalUseCase,
		listFinanceGoalsUseCase,
		updateFinanceGoalUseCase,
		deleteFinanceGoalUseCase,
	)
	habitController := controller.NewHabitController(
		createHabitUseCase,
		listHabitsUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
		toggleCheckinUseCase,
	)
	assistantController := controller.NewAssistantController(handleMessageUseCase)
	summaryController := controller.NewSummaryController(goalsSummaryUseCase, habitsSummaryUseCase)
	syncController := controller.NewSyncController(syncOrchestrator)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Notification delivery
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load notification templates: %w", err)
	}
	sender := notification.NewResendClient(
		cfg.Notification.ResendAPIKey,
		cfg.Notification.FromName,
		cfg.Notification.FromEmail,
	)
	worker := notification.NewWorker(notificationQueueRepo, sender, renderer, notification.WorkerConfig{
		PollInterval: cfg.Notification.PollInterval,
		BatchSize:    cfg.Notification.BatchSize,
	}).WithRecorder(observability.NewNotificationMetrics())

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		goalController,
		financeGoalController,
		habitController,
		assistantController,
		summaryController,
		syncController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:             cfg,
		DB:                 db,
		Router:             r,
		NotificationWorker: worker,
	}, nil
}
