package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

var tashkent = time.FixedZone("Asia/Tashkent", 5*60*60)

// fixedNow is Friday 2024-03-15 14:30 in the report location.
var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, tashkent)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, tashkent)
}

func confirmedOrder(amount int64, when time.Time) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		TotalAmount:   decimal.NewFromInt(amount),
		MarkupProfit:  decimal.Zero,
		PaymentMethod: entity.PaymentMethodManual,
		ConfirmedDate: when.Format(time.RFC3339Nano),
	}
}

func expenseOn(amount int64, day string) *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:         uuid.New(),
		Amount:     decimal.NewFromInt(amount),
		OccurredOn: day,
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	expected := decimal.RequireFromString(want)
	assert.Truef(t, expected.Equal(got.Round(6)), "expected %s, got %s", expected, got)
}
