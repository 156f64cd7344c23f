// Package main is the entry point for the FinanceFlow API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/financeflow/backend/config"
	"github.com/financeflow/backend/internal/application/usecase/auth"
	"github.com/financeflow/backend/internal/application/usecase/categorytype"
	"github.com/financeflow/backend/internal/application/usecase/record"
	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/application/usecase/savingsgoal"
	"github.com/financeflow/backend/internal/application/usecase/suggestion"
	"github.com/financeflow/backend/internal/application/usecase/user"
	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/infra/db"
	"github.com/financeflow/backend/internal/infra/server/router"
	"github.com/financeflow/backend/internal/integration/adapters"
	"github.com/financeflow/backend/internal/integration/email"
	"github.com/financeflow/backend/internal/integration/email/templates"
	"github.com/financeflow/backend/internal/integration/entrypoint/controller"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
	"github.com/financeflow/backend/internal/integration/persistence"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("starting FinanceFlow API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryTypeModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.SavingsGoalModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations completed")

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	typeRepo := persistence.NewCategoryTypeRepository(database.DB())
	recordRepo := persistence.NewRecordRepository(database.DB())
	goalRepo := persistence.NewSavingsGoalRepository(database.DB())
	ledgerRepo := persistence.NewLedgerRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	emailService := email.NewService(emailQueueRepo)

	if err := db.Seed(database.DB(), passwordService); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService)

	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, typeRepo)
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	getRecordUseCase := record.NewGetRecordUseCase(recordRepo)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, typeRepo)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo)

	createTypeUseCase := categorytype.NewCreateTypeUseCase(typeRepo)
	listTypesUseCase := categorytype.NewListTypesUseCase(typeRepo)

	createGoalUseCase := savingsgoal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := savingsgoal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := savingsgoal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := savingsgoal.NewUpdateGoalUseCase(goalRepo, userRepo, emailService)
	deleteGoalUseCase := savingsgoal.NewDeleteGoalUseCase(goalRepo)

	expenseTotalUseCase := report.NewGetExpenseTotalUseCase(ledgerRepo)
	incomeTotalUseCase := report.NewGetIncomeTotalUseCase(ledgerRepo)
	netBalanceUseCase := report.NewGetNetBalanceUseCase(incomeTotalUseCase, expenseTotalUseCase)
	categoryReportUseCase := report.NewGetCategoryReportUseCase(ledgerRepo)

	suggestUseCase := suggestion.NewSuggestCategoryUseCase(typeRepo, geminiService)

	// Controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(getUserUseCase, updateUserUseCase)
	expenseController := controller.NewRecordController(
		entity.RecordKindExpense,
		createRecordUseCase, listRecordsUseCase, getRecordUseCase, updateRecordUseCase, deleteRecordUseCase,
	)
	incomeController := controller.NewRecordController(
		entity.RecordKindIncome,
		createRecordUseCase, listRecordsUseCase, getRecordUseCase, updateRecordUseCase, deleteRecordUseCase,
	)
	typeController := controller.NewCategoryTypeController(createTypeUseCase, listTypesUseCase)
	goalController := controller.NewSavingsGoalController(
		createGoalUseCase, listGoalsUseCase, getGoalUseCase, updateGoalUseCase, deleteGoalUseCase,
	)
	reportController := controller.NewReportController(
		expenseTotalUseCase, incomeTotalUseCase, netBalanceUseCase, categoryReportUseCase,
	)
	suggestionController := controller.NewSuggestionController(suggestUseCase)

	// Middleware
	redisClient := newRedisClient(&cfg.Redis)
	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Email worker
	emailWorkerCtx, stopEmailWorker := context.WithCancel(context.Background())
	defer stopEmailWorker()

	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("failed to initialize email templates", "error", err)
			os.Exit(1)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(emailWorkerCtx)
	}

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		expenseController,
		incomeController,
		typeController,
		goalController,
		reportController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	stopEmailWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// newRedisClient builds the Redis client for the login rate limiter. A bad
// URL falls back to host options so the API still boots; the limiter fails
// open if the client cannot reach Redis.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("invalid redis URL, using defaults", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	opts.DB = cfg.DB

	return redis.NewClient(opts)
}
