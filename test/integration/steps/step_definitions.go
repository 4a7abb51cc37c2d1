//go:build integration

// Package steps provides step definitions for the analytics BDD scenarios.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/config"
	"github.com/storefront-hub/backend/internal/infra/db"
	"github.com/storefront-hub/backend/internal/infra/dependency"
	"github.com/storefront-hub/backend/internal/integration/persistence/model"
	"github.com/storefront-hub/backend/test/integration/mock"
)

const testAPIKey = "test-storefront-key"

type testContext struct {
	server    *httptest.Server
	client    *http.Client
	headers   map[string]string
	response  *response
	db        *mock.Db
	redis     *mock.Redis
	api       *mock.ApiMock
	timeMock  *mock.Time
	companyID uuid.UUID

	source       string
	cacheEnabled bool
	timezone     string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var apiInit sync.Once
var storefrontAPI *mock.ApiMock

func sharedStorefrontAPI() *mock.ApiMock {
	apiInit.Do(func() {
		storefrontAPI = mock.NewApiServer()
		storefrontAPI.Start()
	})
	return storefrontAPI
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if storefrontAPI != nil {
			storefrontAPI.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		redis:    mock.NewRedis(),
		api:      sharedStorefrontAPI(),
		db: mock.NewDb(map[string]any{
			"customer_orders":         &model.OrderModel{},
			"company_custom_expenses": &model.CustomExpenseModel{},
			"company_expenses":        &model.FixedExpensesModel{},
			"products":                &model.ProductModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Environment steps
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)
	ctx.Given(`^the time advances by "([^"]*)"$`, test.theTimeAdvancesBy)
	ctx.Given(`^the report timezone is "([^"]*)"$`, test.theReportTimezoneIs)
	ctx.Given(`^the data source is "(database|storefront)"$`, test.theDataSourceIs)
	ctx.Given(`^the cache is (enabled|disabled)$`, test.theCacheIs)
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Company data steps
	ctx.Given(`^the company has the following orders:$`, test.theCompanyHasTheFollowingOrders)
	ctx.Given(`^the company has the following fixed expenses:$`, test.theCompanyHasTheFollowingFixedExpenses)
	ctx.Given(`^the company has the following custom expenses:$`, test.theCompanyHasTheFollowingCustomExpenses)
	ctx.Given(`^the company has the following products:$`, test.theCompanyHasTheFollowingProducts)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Collaborator assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the cache should contain the key "([^"]*)"$`, test.theCacheShouldContainTheKey)
	ctx.Then(`^the storefront API should have received (\d+) requests? to "([^"]*)"$`, test.theStorefrontAPIShouldHaveReceivedRequestsTo)
	ctx.Then(`^the storefront API request to "([^"]*)" should have header "([^"]*)" with "([^"]*)"$`, test.theStorefrontAPIRequestShouldHaveHeader)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.companyID = uuid.New()
	t.source = config.SourceDatabase
	t.cacheEnabled = false
	t.timezone = "UTC"
	t.timeMock.SetCurrentTime(time.Now())
	t.api.Reset()

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) theTimeAdvancesBy(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	t.timeMock.Advance(d)
	t.redis.Server.FastForward(d)
	return nil
}

func (t *testContext) theReportTimezoneIs(timezone string) error {
	t.timezone = timezone
	return nil
}

func (t *testContext) theDataSourceIs(source string) error {
	t.source = source
	if source == config.SourceStorefront {
		// Companies without configured fixed expenses are unknown upstream.
		t.api.SetResponse(http.MethodGet, t.storefrontPath("expenses"), http.StatusNotFound, map[string]any{
			"error": "expenses not found",
		})
	}
	return nil
}

func (t *testContext) theCacheIs(state string) error {
	t.cacheEnabled = state == "enabled"
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Storefront.Source = t.source
	cfg.Storefront.BaseURL = t.api.GetUrl()
	cfg.Storefront.APIKey = testAPIKey
	cfg.Cache.Enabled = t.cacheEnabled
	cfg.Cache.Prefix = "analytics"
	cfg.Cache.TTL = 2 * time.Minute
	cfg.Report.Timezone = t.timezone

	redisConn := db.NewRedisFromClient(t.redis.Client)
	injector := dependency.NewInjector(cfg, dependency.Options{
		DB:                 t.db.DbConn,
		Redis:              t.redis.Client,
		Clock:              t.timeMock,
		DBHealthChecker:    func() bool { return t.db.DbConn != nil },
		RedisHealthChecker: redisConn.HealthCheck,
	})
	if !injector.HasDataSource() {
		return errors.New("injector has no data source")
	}

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) theCompanyHasTheFollowingOrders(table *godog.Table) error {
	rows := tableRows(table)

	if t.source == config.SourceStorefront {
		payload := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			order := map[string]any{
				"id":             uuid.NewString(),
				"order_code":     row["order_code"],
				"total_amount":   row["total_amount"],
				"payment_method": row["payment_method"],
				"status":         row["status"],
			}
			for _, field := range []string{"confirmed_date", "order_date", "created_at"} {
				if row[field] != "" {
					order[field] = row[field]
				}
			}
			payload = append(payload, order)
		}
		t.api.SetResponse(http.MethodGet, t.storefrontPath("orders"), http.StatusOK, payload)
		return nil
	}

	for i, row := range rows {
		total, err := decimal.NewFromString(row["total_amount"])
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		order := &model.OrderModel{
			ID:            uuid.New(),
			CompanyID:     t.companyID,
			OrderCode:     row["order_code"],
			TotalAmount:   total,
			MarkupProfit:  decimalOrZero(row["markup_profit"]),
			PaymentMethod: row["payment_method"],
			Status:        row["status"],
		}
		if order.OrderCode == "" {
			order.OrderCode = fmt.Sprintf("ORD-%d", i+1)
		}
		if order.PaymentMethod == "" {
			order.PaymentMethod = "manual"
		}
		if order.ConfirmedDate, err = optionalTime(row["confirmed_date"]); err != nil {
			return err
		}
		if order.OrderDate, err = optionalTime(row["order_date"]); err != nil {
			return err
		}
		if order.CreatedDate, err = optionalTime(row["created_at"]); err != nil {
			return err
		}
		if err := t.db.DbConn.Create(order).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theCompanyHasTheFollowingFixedExpenses(table *godog.Table) error {
	rows := tableRows(table)
	if len(rows) != 1 {
		return fmt.Errorf("expected exactly one row of fixed expenses, got %d", len(rows))
	}
	row := rows[0]

	if t.source == config.SourceStorefront {
		t.api.SetResponse(http.MethodGet, t.storefrontPath("expenses"), http.StatusOK, map[string]any{
			"employee_expenses":    row["employee_expenses"],
			"electricity_expenses": row["electricity_expenses"],
			"purchase_costs":       row["purchase_costs"],
		})
		return nil
	}

	return t.db.DbConn.Create(&model.FixedExpensesModel{
		CompanyID:           t.companyID,
		EmployeeExpenses:    decimalOrZero(row["employee_expenses"]),
		ElectricityExpenses: decimalOrZero(row["electricity_expenses"]),
		PurchaseCosts:       decimalOrZero(row["purchase_costs"]),
	}).Error
}

func (t *testContext) theCompanyHasTheFollowingCustomExpenses(table *godog.Table) error {
	rows := tableRows(table)

	if t.source == config.SourceStorefront {
		payload := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			payload = append(payload, map[string]any{
				"id":           uuid.NewString(),
				"expense_name": row["name"],
				"amount":       row["amount"],
				"expense_date": row["expense_date"],
			})
		}
		t.api.SetResponse(http.MethodGet, t.storefrontPath("custom-expenses"), http.StatusOK, payload)
		return nil
	}

	for _, row := range rows {
		if err := t.db.DbConn.Create(&model.CustomExpenseModel{
			ID:          uuid.New(),
			CompanyID:   t.companyID,
			Name:        row["name"],
			Amount:      decimalOrZero(row["amount"]),
			ExpenseDate: row["expense_date"],
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theCompanyHasTheFollowingProducts(table *godog.Table) error {
	rows := tableRows(table)

	if t.source == config.SourceStorefront {
		payload := make([]map[string]any, 0, len(rows))
		for _, row := range rows {
			quantity, err := strconv.ParseInt(row["quantity"], 10, 64)
			if err != nil {
				return err
			}
			payload = append(payload, map[string]any{
				"id":       uuid.NewString(),
				"name":     row["name"],
				"price":    row["price"],
				"quantity": quantity,
			})
		}
		t.api.SetResponse(http.MethodGet, t.storefrontPath("products"), http.StatusOK, payload)
		return nil
	}

	for _, row := range rows {
		quantity, err := strconv.ParseInt(row["quantity"], 10, 64)
		if err != nil {
			return err
		}
		if err := t.db.DbConn.Create(&model.ProductModel{
			ID:        uuid.New(),
			CompanyID: t.companyID,
			Name:      row["name"],
			Price:     decimalOrZero(row["price"]),
			Quantity:  quantity,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{company_id}}", t.companyID.String())
}

func (t *testContext) storefrontPath(resource string) string {
	return "/companies/" + t.companyID.String() + "/" + resource
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	// JSON numbers decode as float64; compare them numerically.
	if number, ok := value.(float64); ok {
		expected, err := strconv.ParseFloat(expectedValue, 64)
		if err == nil {
			if math.Abs(number-expected) > 1e-6 {
				return fmt.Errorf("field '%s' expected %s, got %v", field, expectedValue, number)
			}
			return nil
		}
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := t.response.headers.Get(header)
	if !strings.Contains(value, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, value)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theCacheShouldContainTheKey(key string) error {
	key = t.replacePlaceholders(key)
	if !t.redis.Server.Exists(key) {
		return fmt.Errorf("cache key '%s' not found, keys: %v", key, t.redis.Server.Keys())
	}
	return nil
}

func (t *testContext) theStorefrontAPIShouldHaveReceivedRequestsTo(count int, path string) error {
	path = t.replacePlaceholders(path)
	if got := t.api.RequestCount(http.MethodGet, path); got != count {
		return fmt.Errorf("expected %d requests to '%s', got %d", count, path, got)
	}
	return nil
}

func (t *testContext) theStorefrontAPIRequestShouldHaveHeader(path, header, expected string) error {
	path = t.replacePlaceholders(path)
	expected = strings.ReplaceAll(expected, "{{api_key}}", testAPIKey)
	if got := t.api.GetHeader(http.MethodGet, path, 0, header); got != expected {
		return fmt.Errorf("expected header '%s' to be '%s' on '%s', got '%s'", header, expected, path, got)
	}
	return nil
}

func tableRows(table *godog.Table) []map[string]string {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = strings.TrimSpace(cell.Value)
		}
		rows = append(rows, values)
	}
	return rows
}

func optionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return &parsed, nil
}

func decimalOrZero(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
