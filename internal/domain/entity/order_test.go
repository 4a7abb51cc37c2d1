package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := map[string]PaymentMethod{
		"demo_online":  PaymentMethodDemoOnline,
		"demo-online":  PaymentMethodDemoOnline,
		"real_online":  PaymentMethodRealOnline,
		"manual":       PaymentMethodManual,
		"checks_codes": PaymentMethodManual,
		"":             PaymentMethodManual,
	}

	for raw, want := range tests {
		assert.Equal(t, want, ParsePaymentMethod(raw), "raw=%q", raw)
	}
}

func TestFormatOrderTimestamp(t *testing.T) {
	assert.Empty(t, FormatOrderTimestamp(nil))
	assert.Empty(t, FormatOrderTimestamp(&time.Time{}))

	ts := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15T09:00:00Z", FormatOrderTimestamp(&ts))
}

func TestInventoryValuation(t *testing.T) {
	items := []*StockItem{
		{UnitCost: decimal.NewFromInt(1200), Quantity: 5},
		{UnitCost: decimal.RequireFromString("99.5"), Quantity: 2},
		{UnitCost: decimal.NewFromInt(500), Quantity: 0},
		{UnitCost: decimal.NewFromInt(500), Quantity: -3},
		nil,
	}

	got := InventoryValuation(items)
	assert.True(t, got.Equal(decimal.NewFromInt(6199)), got.String())
	assert.True(t, InventoryValuation(nil).IsZero())
}

func TestFixedExpenses_MonthlyTotal(t *testing.T) {
	var missing *FixedExpenses
	assert.True(t, missing.MonthlyTotal().IsZero())

	fixed := &FixedExpenses{
		Employee:    decimal.NewFromInt(3000000),
		Electricity: decimal.NewFromInt(500000),
		Purchase:    decimal.NewFromInt(1000000),
	}
	assert.True(t, fixed.MonthlyTotal().Equal(decimal.NewFromInt(4500000)))
}
