// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/entity"
)

// APIKeyHeader is the header carrying the storefront API key.
const APIKeyHeader = "X-API-Key"

type storefrontOrder struct {
	ID            uuid.UUID       `json:"id"`
	OrderCode     string          `json:"order_code"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	MarkupProfit  decimal.Decimal `json:"markup_profit"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ConfirmedDate *string         `json:"confirmed_date"`
	OrderDate     *string         `json:"order_date"`
	CreatedAt     *string         `json:"created_at"`
}

type storefrontFixedExpenses struct {
	EmployeeExpenses    decimal.Decimal `json:"employee_expenses"`
	ElectricityExpenses decimal.Decimal `json:"electricity_expenses"`
	PurchaseCosts       decimal.Decimal `json:"purchase_costs"`
}

type storefrontCustomExpense struct {
	ID          uuid.UUID       `json:"id"`
	ExpenseName string          `json:"expense_name"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
	CreatedAt   string          `json:"created_at"`
}

type storefrontProduct struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// StorefrontClient reads a company's orders, expenses and products from the
// storefront API. Date fields are passed through as delivered.
type StorefrontClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewStorefrontClient creates a new storefront API client.
func NewStorefrontClient(baseURL, apiKey string, timeout time.Duration) *StorefrontClient {
	return &StorefrontClient{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Orders returns the client as an adapter.OrderRepository.
func (c *StorefrontClient) Orders() adapter.OrderRepository {
	return storefrontOrders{c}
}

// Stock returns the client as an adapter.StockRepository.
func (c *StorefrontClient) Stock() adapter.StockRepository {
	return storefrontStock{c}
}

// ListOrders retrieves every order of a company.
func (c *StorefrontClient) ListOrders(ctx context.Context, companyID uuid.UUID) ([]*entity.Order, error) {
	var payload []storefrontOrder
	if _, err := c.get(ctx, companyID, "orders", &payload); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, len(payload))
	for i, o := range payload {
		orders[i] = &entity.Order{
			ID:            o.ID,
			CompanyID:     companyID,
			OrderCode:     o.OrderCode,
			TotalAmount:   o.TotalAmount,
			MarkupProfit:  o.MarkupProfit,
			PaymentMethod: entity.ParsePaymentMethod(o.PaymentMethod),
			Status:        o.Status,
			ConfirmedDate: deref(o.ConfirmedDate),
			OrderDate:     deref(o.OrderDate),
			CreatedDate:   deref(o.CreatedAt),
		}
	}
	return orders, nil
}

// GetFixedExpenses retrieves the monthly fixed costs of a company.
// A company without an expenses record gets zero amounts.
func (c *StorefrontClient) GetFixedExpenses(ctx context.Context, companyID uuid.UUID) (*entity.FixedExpenses, error) {
	var payload storefrontFixedExpenses
	found, err := c.get(ctx, companyID, "expenses", &payload)
	if err != nil {
		return nil, err
	}
	if !found {
		payload = storefrontFixedExpenses{}
	}

	return &entity.FixedExpenses{
		CompanyID:   companyID,
		Employee:    payload.EmployeeExpenses,
		Electricity: payload.ElectricityExpenses,
		Purchase:    payload.PurchaseCosts,
	}, nil
}

// ListCustomExpenses retrieves every discretionary expense of a company.
func (c *StorefrontClient) ListCustomExpenses(ctx context.Context, companyID uuid.UUID) ([]*entity.ExpenseRecord, error) {
	var payload []storefrontCustomExpense
	if _, err := c.get(ctx, companyID, "custom-expenses", &payload); err != nil {
		return nil, err
	}

	expenses := make([]*entity.ExpenseRecord, len(payload))
	for i, e := range payload {
		expenses[i] = &entity.ExpenseRecord{
			ID:         e.ID,
			CompanyID:  companyID,
			Name:       e.ExpenseName,
			Amount:     e.Amount,
			OccurredOn: e.ExpenseDate,
			CreatedAt:  parseCreatedAt(e.CreatedAt),
		}
	}
	return expenses, nil
}

// ListProducts retrieves the company's products with cost and quantity on hand.
func (c *StorefrontClient) ListProducts(ctx context.Context, companyID uuid.UUID) ([]*entity.StockItem, error) {
	var payload []storefrontProduct
	if _, err := c.get(ctx, companyID, "products", &payload); err != nil {
		return nil, err
	}

	items := make([]*entity.StockItem, len(payload))
	for i, p := range payload {
		items[i] = &entity.StockItem{
			ID:        p.ID,
			CompanyID: companyID,
			Name:      p.Name,
			UnitCost:  p.Price,
			Quantity:  p.Quantity,
		}
	}
	return items, nil
}

// get fetches {base}/companies/{id}/{resource} into dest. It reports false
// without error when the resource does not exist.
func (c *StorefrontClient) get(ctx context.Context, companyID uuid.UUID, resource string, dest any) (bool, error) {
	url := fmt.Sprintf("%s/companies/%s/%s", c.baseURL, companyID, resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("creating %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("sending %s request: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("storefront %s: non-200 status code: %d", resource, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("reading %s response body: %w", resource, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return false, fmt.Errorf("unmarshaling %s response: %w", resource, err)
	}
	return true, nil
}

// parseCreatedAt is informational only; unparseable values become the zero time.
func parseCreatedAt(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type storefrontOrders struct{ c *StorefrontClient }

func (s storefrontOrders) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Order, error) {
	return s.c.ListOrders(ctx, companyID)
}

type storefrontStock struct{ c *StorefrontClient }

func (s storefrontStock) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.StockItem, error) {
	return s.c.ListProducts(ctx, companyID)
}
