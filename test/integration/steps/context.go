// Package steps provides step definitions for BDD integration tests. Each
// scenario runs the real router and use-case stack against an in-memory
// SQLite database and a miniredis instance.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/lifehub/backend/config"
	"github.com/lifehub/backend/internal/infra/dependency"
	"github.com/lifehub/backend/internal/integration/persistence/model"
	"github.com/lifehub/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Captured identifiers for {placeholder} expansion in endpoints
	vars map[string]string

	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
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

func testModels() map[string]any {
	return map[string]any{
		"users":                 &model.UserModel{},
		"refresh_tokens":        &model.RefreshTokenModel{},
		"password_reset_tokens": &model.PasswordResetTokenModel{},
		"categories":            &model.CategoryModel{},
		"transactions":          &model.TransactionModel{},
		"goals":                 &model.GoalModel{},
		"goal_progress":         &model.GoalProgressModel{},
		"finance_goals":         &model.FinanceGoalModel{},
		"habits":                &model.HabitModel{},
		"habit_checkins":        &model.HabitCheckinModel{},
		"notification_queue":    &model.NotificationQueueModel{},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		// Disables the login rate limiter and selects gin test mode
		os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dbMock := mock.NewDb("lifehub", testModels())
		if err := dbMock.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to reset redis: %w", err)
		}

		cfg := config.Load()
		injector, err := dependency.NewInjector(cfg, dbMock.DbConn, redisClient, func() bool { return true })
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           make(map[string]string),
			cfg:            cfg,
		}
		tc.vars["today"] = time.Now().UTC().Format("2006-01-02")
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

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
	registerDomainSteps(ctx)
}
