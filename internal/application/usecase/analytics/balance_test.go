package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

func TestComputeBalance(t *testing.T) {
	orders := []*entity.Order{
		{TotalAmount: decimal.NewFromInt(1000), MarkupProfit: decimal.NewFromInt(100), PaymentMethod: entity.PaymentMethodManual},
		{TotalAmount: decimal.NewFromInt(2000), MarkupProfit: decimal.NewFromInt(250), PaymentMethod: entity.PaymentMethodDemoOnline},
		{TotalAmount: decimal.NewFromInt(3000), MarkupProfit: decimal.NewFromInt(300), PaymentMethod: entity.PaymentMethodRealOnline},
	}
	alloc := Allocation{
		FixedShare:         decimal.NewFromInt(1500),
		DiscretionaryShare: decimal.NewFromInt(500),
	}

	result := ComputeBalance(orders, alloc, decimal.NewFromInt(1000))

	assertMoney(t, "6000", result.Revenue)
	assertMoney(t, "3000", result.Expenses)
	assertMoney(t, "3000", result.Balance)
	assertMoney(t, "2000", result.OperatingExpenses)
	assertMoney(t, "1000", result.InventoryValuation)
	assertMoney(t, "650", result.MarkupProfit)
	assertMoney(t, "2000", result.AverageOrderValue)
	assert.Equal(t, 3, result.OrderCount)

	assertMoney(t, "1000", result.Payments.Manual)
	assertMoney(t, "2000", result.Payments.DemoOnline)
	assertMoney(t, "3000", result.Payments.RealOnline)
}

func TestComputeBalance_NegativeBalanceKeepsSign(t *testing.T) {
	orders := []*entity.Order{{TotalAmount: decimal.NewFromInt(500)}}
	alloc := Allocation{FixedShare: decimal.NewFromInt(2000), DiscretionaryShare: decimal.Zero}

	result := ComputeBalance(orders, alloc, decimal.NewFromInt(1000))

	assertMoney(t, "-2500", result.Balance)
	assert.True(t, result.Balance.IsNegative())
}

func TestComputeBalance_EmptyPeriodStillCarriesInventory(t *testing.T) {
	alloc := Allocation{FixedShare: decimal.Zero, DiscretionaryShare: decimal.Zero}

	result := ComputeBalance(nil, alloc, decimal.NewFromInt(750))

	assert.True(t, result.Revenue.IsZero())
	assert.True(t, result.AverageOrderValue.IsZero())
	assert.Equal(t, 0, result.OrderCount)
	assertMoney(t, "750", result.Expenses)
	assertMoney(t, "-750", result.Balance)
	assert.True(t, result.OperatingExpenses.IsZero())
}

func TestChangePct(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     *float64
	}{
		{"no previous value", 100, 0, nil},
		{"growth", 150, 100, floatPtr(50)},
		{"decline", 50, 200, floatPtr(-75)},
		{"recovery from a loss", 50, -100, floatPtr(150)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changePct(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.InDelta(t, *tt.want, *got, 1e-9)
			}
		})
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
