package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

func newStorefrontServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(APIKeyHeader) != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestStorefrontClient(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	prefix := "/api/companies/" + companyID.String()

	server := newStorefrontServer(t, map[string]string{
		prefix + "/orders": `[
			{"id":"` + uuid.NewString() + `","order_code":"A-1","total_amount":"1500.50","markup_profit":200,
			 "payment_method":"real_online","status":"confirmed","confirmed_date":"2024-03-15T09:00:00+05:00",
			 "order_date":null,"created_at":"2024-03-14 20:00:00"},
			{"id":"` + uuid.NewString() + `","order_code":"A-2","total_amount":300,"payment_method":"checks_codes",
			 "confirmed_date":null,"order_date":null,"created_at":null}
		]`,
		prefix + "/expenses": `{"employee_expenses":3000000,"electricity_expenses":"500000","purchase_costs":1000000}`,
		prefix + "/custom-expenses": `[
			{"id":"` + uuid.NewString() + `","expense_name":"Rent","amount":700,"expense_date":"2024-03-10","created_at":""}
		]`,
		prefix + "/products": `[{"id":"` + uuid.NewString() + `","name":"Tea","price":"12.5","quantity":4}]`,
	})
	client := NewStorefrontClient(server.URL+"/api/", "secret", 5*time.Second)

	t.Run("maps orders and keeps raw dates", func(t *testing.T) {
		orders, err := client.Orders().ListByCompany(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Equal(t, companyID, orders[0].CompanyID)
		assert.True(t, orders[0].TotalAmount.Equal(decimal.RequireFromString("1500.50")))
		assert.Equal(t, entity.PaymentMethodRealOnline, orders[0].PaymentMethod)
		assert.Equal(t, "2024-03-15T09:00:00+05:00", orders[0].ConfirmedDate)
		assert.Equal(t, "2024-03-14 20:00:00", orders[0].CreatedDate)
		assert.Empty(t, orders[0].OrderDate)

		assert.Equal(t, entity.PaymentMethodManual, orders[1].PaymentMethod)
		assert.Equal(t, [3]string{}, orders[1].CandidateDates())
	})

	t.Run("maps fixed expenses", func(t *testing.T) {
		fixed, err := client.GetFixedExpenses(ctx, companyID)
		require.NoError(t, err)
		assert.True(t, fixed.MonthlyTotal().Equal(decimal.NewFromInt(4500000)))
	})

	t.Run("treats missing fixed expenses as zero", func(t *testing.T) {
		fixed, err := client.GetFixedExpenses(ctx, uuid.New())
		require.NoError(t, err)
		assert.True(t, fixed.MonthlyTotal().IsZero())
	})

	t.Run("maps custom expenses", func(t *testing.T) {
		expenses, err := client.ListCustomExpenses(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "Rent", expenses[0].Name)
		assert.Equal(t, "2024-03-10", expenses[0].OccurredOn)
		assert.True(t, expenses[0].CreatedAt.IsZero())
	})

	t.Run("maps products", func(t *testing.T) {
		items, err := client.Stock().ListByCompany(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, entity.InventoryValuation(items).Equal(decimal.NewFromInt(50)))
	})

	t.Run("reports non-200 responses", func(t *testing.T) {
		unauthorized := NewStorefrontClient(server.URL+"/api", "wrong", time.Second)
		_, err := unauthorized.ListOrders(ctx, companyID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-200 status code: 401")
	})
}

func TestSystemClock_Now(t *testing.T) {
	before := time.Now()
	now := NewSystemClock().Now()
	assert.False(t, now.Before(before))
}
