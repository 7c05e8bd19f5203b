// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/interchange"
	"github.com/expense-tracker/backend/internal/application/usecase/suggestion"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// Options carries the external adapters the injector cannot build itself.
// Tests swap in stubs here.
type Options struct {
	IdentityProvider adapter.IdentityProvider
	CategoryAdvisor  adapter.CategoryAdvisor
	EmailSender      adapter.EmailSender
	RedisClient      *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	importJobRepo := persistence.NewImportJobRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	snapshotCache := adapters.NewRedisSnapshotCache(opts.RedisClient)

	identityProvider := opts.IdentityProvider
	if identityProvider == nil {
		identityProvider = adapters.NewGoogleIdentityProvider(cfg.Google.ClientID)
	}

	categoryAdvisor := opts.CategoryAdvisor
	if categoryAdvisor == nil {
		categoryAdvisor = adapters.NewGeminiAdvisor(cfg.Gemini.APIKey)
	}

	emailSender := opts.EmailSender
	if emailSender == nil {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	emailService := email.NewService(emailQueueRepo)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	googleLoginUseCase := auth.NewGoogleLoginUseCase(identityProvider, userRepo, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, snapshotCache)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, snapshotCache)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, snapshotCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, snapshotCache)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo, snapshotCache)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, snapshotCache)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo, snapshotCache)

	// Create interchange use cases
	importTransactionsUseCase := interchange.NewImportTransactionsUseCase(
		transactionRepo,
		userRepo,
		importJobRepo,
		emailService,
		snapshotCache,
	)
	exportTransactionsUseCase := interchange.NewExportTransactionsUseCase(transactionRepo, snapshotCache)

	// Create suggestion use case
	suggestCategoryUseCase := suggestion.NewSuggestCategoryUseCase(categoryAdvisor)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		googleLoginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)

	interchangeController := controller.NewInterchangeController(
		importTransactionsUseCase,
		exportTransactionsUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
	)

	suggestionController := controller.NewSuggestionController(suggestCategoryUseCase)
	categoryController := controller.NewCategoryController()

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		interchangeController,
		dashboardController,
		suggestionController,
		categoryController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
