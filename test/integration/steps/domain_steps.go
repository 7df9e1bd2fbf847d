package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// registerDomainSteps registers steps that seed users and entities through
// the public API, capturing generated identifiers for later placeholders.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user$`, aRegisteredUser)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I create a goal with body:$`, iCreateAGoalWithBody)
	ctx.Step(`^I create a finance goal with body:$`, iCreateAFinanceGoalWithBody)
	ctx.Step(`^I create a habit with body:$`, iCreateAHabitWithBody)
	ctx.Step(`^I create a transaction with body:$`, iCreateATransactionWithBody)
}

func aRegisteredUser(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
	payload := map[string]string{
		"email":    email,
		"name":     "Test User",
		"password": "password123",
		"timezone": "UTC",
	}
	body, _ := json.Marshal(payload)

	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var result struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(tc.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse registration response: %w", err)
	}

	tc.accessToken = result.AccessToken
	tc.refreshToken = result.RefreshToken
	tc.vars["user_id"] = result.User.ID
	tc.vars["email"] = email
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

// createEntity posts a docstring body and captures the listed fields from the
// created representation under the given placeholder names.
func createEntity(ctx context.Context, endpoint string, body *godog.DocString, captures map[string]string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.doRequest(http.MethodPost, endpoint, bytes.NewBufferString(tc.expand(body.Content))); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("create failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse create response: %w", err)
	}
	for field, name := range captures {
		if value, ok := lookupField(data, field); ok {
			tc.vars[name] = fmt.Sprintf("%v", value)
		}
	}
	return nil
}

func iCreateAGoalWithBody(ctx context.Context, body *godog.DocString) error {
	return createEntity(ctx, "/api/v1/goals", body, map[string]string{
		"id":                     "goal_id",
		"linked_finance_goal_id": "linked_finance_goal_id",
	})
}

func iCreateAFinanceGoalWithBody(ctx context.Context, body *godog.DocString) error {
	return createEntity(ctx, "/api/v1/finance-goals", body, map[string]string{
		"id":             "finance_goal_id",
		"linked_goal_id": "linked_goal_id",
	})
}

func iCreateAHabitWithBody(ctx context.Context, body *godog.DocString) error {
	return createEntity(ctx, "/api/v1/habits", body, map[string]string{
		"id": "habit_id",
	})
}

func iCreateATransactionWithBody(ctx context.Context, body *godog.DocString) error {
	return createEntity(ctx, "/api/v1/transactions", body, map[string]string{
		"transaction.id": "transaction_id",
	})
}
