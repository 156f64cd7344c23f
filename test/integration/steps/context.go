// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

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
	"github.com/financeflow/backend/internal/integration/entrypoint/controller"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
	"github.com/financeflow/backend/internal/integration/persistence"
	"github.com/financeflow/backend/internal/integration/persistence/model"
	"github.com/financeflow/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string
	accessToken    string

	// vars stores IDs captured during the scenario for request templating.
	vars map[string]string
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
		}

		engine, err := buildEngine()
		if err != nil {
			return ctx, err
		}
		tc.server = httptest.NewServer(engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// buildEngine wires the full application against the in-memory database,
// mirroring the production wiring except for the outbound providers.
func buildEngine() (*gin.Engine, error) {
	testDb := mock.NewDb(
		&model.UserModel{},
		&model.CategoryTypeModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.SavingsGoalModel{},
		&model.EmailQueueModel{},
	)
	if err := testDb.Reset(); err != nil {
		return nil, err
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, err
	}

	conn := testDb.Conn

	userRepo := persistence.NewUserRepository(conn)
	typeRepo := persistence.NewCategoryTypeRepository(conn)
	recordRepo := persistence.NewRecordRepository(conn)
	goalRepo := persistence.NewSavingsGoalRepository(conn)
	ledgerRepo := persistence.NewLedgerRepository(conn)
	emailQueueRepo := persistence.NewEmailQueueRepository(conn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	emailService := email.NewService(emailQueueRepo)
	suggester := mock.NewSuggester()

	if err := db.Seed(conn, passwordService); err != nil {
		return nil, err
	}

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

	suggestUseCase := suggestion.NewSuggestCategoryUseCase(typeRepo, suggester)

	healthController := controller.NewHealthController(func() bool { return true })
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

	loginRateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

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

	return r.Setup("test"), nil
}
