// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bookmate/backend/config"
	appadapter "github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/application/usecase/auth"
	"github.com/bookmate/backend/internal/application/usecase/entry"
	"github.com/bookmate/backend/internal/application/usecase/options"
	"github.com/bookmate/backend/internal/application/usecase/quickentry"
	"github.com/bookmate/backend/internal/application/usecase/report"
	"github.com/bookmate/backend/internal/infra/db"
	"github.com/bookmate/backend/internal/infra/server/router"
	"github.com/bookmate/backend/internal/integration/adapters"
	"github.com/bookmate/backend/internal/integration/cache"
	"github.com/bookmate/backend/internal/integration/email"
	"github.com/bookmate/backend/internal/integration/entrypoint/controller"
	"github.com/bookmate/backend/internal/integration/entrypoint/middleware"
	"github.com/bookmate/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The Redis client may be nil, in which case options are read straight from
// the database on every request.
func NewInjector(cfg *config.Config, database *db.Postgres, redisClient *redis.Client) *Injector {
	gdb := database.Gorm()

	// Repositories
	userRepo := persistence.NewUserRepository(gdb)
	entryRepo := persistence.NewEntryRepository(gdb)
	optionRepo := persistence.NewOptionRepository(gdb)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	var optionCache appadapter.OptionCache
	if redisClient != nil {
		optionCache = cache.NewOptionCache(redisClient, cfg.Options.CacheTTL)
	}

	var extractor appadapter.AIExtractor
	if cfg.AI.GeminiAPIKey != "" {
		extractor = adapters.NewGeminiExtractor(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	}

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Option catalog use cases
	getOptionsUseCase := options.NewGetOptionsUseCase(optionRepo, optionCache)
	listOptionsUseCase := options.NewListOptionsUseCase(getOptionsUseCase)
	updateOptionsUseCase := options.NewUpdateOptionsUseCase(optionRepo, optionCache)

	// Quick-entry use case
	parseCommandUseCase := quickentry.NewParseCommandUseCase(getOptionsUseCase, extractor)

	// Ledger entry use cases
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)

	// Report use cases
	profitLossUseCase := report.NewGetProfitLossUseCase(entryRepo)
	emailReportUseCase := report.NewEmailReportUseCase(profitLossUseCase, emailSender)

	// Controllers
	healthController := controller.NewHealthController(database.Healthy)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	quickEntryController := controller.NewQuickEntryController(parseCommandUseCase)
	entryController := controller.NewEntryController(createEntryUseCase, listEntriesUseCase, deleteEntryUseCase)
	optionsController := controller.NewOptionsController(listOptionsUseCase, updateOptionsUseCase)
	reportController := controller.NewReportController(profitLossUseCase, emailReportUseCase)

	// Middleware
	// Higher rate limits in test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		quickEntryController,
		entryController,
		optionsController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     gdb,
		Router: r,
	}
}
