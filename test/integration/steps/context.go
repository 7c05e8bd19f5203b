// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
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

	// Stored entities
	lastTransactionID string

	// Wiring
	injector    *dependency.Injector
	emailSender *email.MockEmailSender
	db          *mock.Db
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

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		database := mock.NewDb(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.TransactionModel{},
			&model.ImportJobModel{},
			&model.EmailQueueModel{},
		)
		if err := database.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		cfg := config.Load()
		cfg.Server.Environment = "test"

		emailSender := email.NewMockEmailSender()

		injector, err := dependency.NewInjector(cfg, database.Conn, dependency.Options{
			IdentityProvider: &mock.IdentityProvider{},
			CategoryAdvisor:  &mock.Advisor{},
			EmailSender:      emailSender,
			RedisClient:      redisClient,
		})
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			injector:       injector,
			emailSender:    emailSender,
			db:             database,
		}
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

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I am signed in as "([^"]*)"$`, iAmSignedInAs)
	ctx.Step(`^I refresh my session$`, iRefreshMySession)
	ctx.Step(`^I log out$`, iLogOut)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// registerDomainSteps registers transaction and email steps.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a transaction:$`, iHaveATransaction)
	ctx.Step(`^I send a "([^"]*)" request to the stored transaction$`, iSendARequestToTheStoredTransaction)
	ctx.Step(`^I send a "([^"]*)" request to the stored transaction with body:$`, iSendARequestToTheStoredTransactionWithBody)
	ctx.Step(`^I bulk delete the stored transaction$`, iBulkDeleteTheStoredTransaction)
	ctx.Step(`^the email worker runs$`, theEmailWorkerRuns)
	ctx.Step(`^(\d+) email should have been sent$`, emailsShouldHaveBeenSent)
	ctx.Step(`^(\d+) emails should have been sent$`, emailsShouldHaveBeenSent)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iAmSignedInAs(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"id_token": %q}`, name)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/google", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusOK && tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("sign-in failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var auth struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &auth); err != nil {
		return ctx, fmt.Errorf("failed to parse sign-in response: %w", err)
	}
	tc.accessToken = auth.AccessToken
	tc.refreshToken = auth.RefreshToken

	return SetTestContext(ctx, tc), nil
}

func iRefreshMySession(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"refresh_token": %q}`, tc.refreshToken)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}

	if tc.response.StatusCode == http.StatusOK {
		var pair struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal(tc.responseBody, &pair); err == nil {
			tc.accessToken = pair.AccessToken
			tc.refreshToken = pair.RefreshToken
		}
	}

	return SetTestContext(ctx, tc), nil
}

func iLogOut(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"refresh_token": %q}`, tc.refreshToken)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/logout", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHaveATransaction(ctx context.Context, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("transaction creation failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse created transaction: %w", err)
	}
	tc.lastTransactionID = created.ID

	return SetTestContext(ctx, tc), nil
}

func iSendARequestToTheStoredTransaction(ctx context.Context, method string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastTransactionID == "" {
		return ctx, fmt.Errorf("no stored transaction")
	}
	if err := tc.doRequest(method, "/api/v1/transactions/"+tc.lastTransactionID, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToTheStoredTransactionWithBody(ctx context.Context, method string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastTransactionID == "" {
		return ctx, fmt.Errorf("no stored transaction")
	}
	if err := tc.doRequest(method, "/api/v1/transactions/"+tc.lastTransactionID, bytes.NewBufferString(body.Content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iBulkDeleteTheStoredTransaction(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if tc.lastTransactionID == "" {
		return ctx, fmt.Errorf("no stored transaction")
	}
	body := fmt.Sprintf(`{"ids": [%q]}`, tc.lastTransactionID)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions/bulk-delete", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func theEmailWorkerRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

func emailsShouldHaveBeenSent(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tc.emailSender.SentEmails) != expected {
		return fmt.Errorf("expected %d emails sent, got %d", expected, len(tc.emailSender.SentEmails))
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(tc.responseBody))
	}

	return nil
}
