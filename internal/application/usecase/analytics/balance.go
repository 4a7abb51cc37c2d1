package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// PaymentBreakdown splits period revenue by payment method.
type PaymentBreakdown struct {
	Manual     decimal.Decimal
	DemoOnline decimal.Decimal
	RealOnline decimal.Decimal
}

// Balance is the financial result of one period.
type Balance struct {
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal

	// OperatingExpenses excludes the standing inventory valuation.
	OperatingExpenses  decimal.Decimal
	InventoryValuation decimal.Decimal

	OrderCount        int
	AverageOrderValue decimal.Decimal
	MarkupProfit      decimal.Decimal
	Payments          PaymentBreakdown
}

// ComputeBalance combines filtered-order revenue with the period's allocated
// costs. Inventory valuation is a standing quantity and enters every period
// unscaled. The balance keeps its sign; a negative value is a net loss.
func ComputeBalance(orders []*entity.Order, alloc Allocation, inventoryValuation decimal.Decimal) Balance {
	result := Balance{
		Revenue:           decimal.Zero,
		AverageOrderValue: decimal.Zero,
		MarkupProfit:      decimal.Zero,
		Payments: PaymentBreakdown{
			Manual:     decimal.Zero,
			DemoOnline: decimal.Zero,
			RealOnline: decimal.Zero,
		},
	}

	for _, order := range orders {
		if order == nil {
			continue
		}
		result.Revenue = result.Revenue.Add(order.TotalAmount)
		result.MarkupProfit = result.MarkupProfit.Add(order.MarkupProfit)
		result.OrderCount++

		switch order.PaymentMethod {
		case entity.PaymentMethodDemoOnline:
			result.Payments.DemoOnline = result.Payments.DemoOnline.Add(order.TotalAmount)
		case entity.PaymentMethodRealOnline:
			result.Payments.RealOnline = result.Payments.RealOnline.Add(order.TotalAmount)
		default:
			result.Payments.Manual = result.Payments.Manual.Add(order.TotalAmount)
		}
	}

	if result.OrderCount > 0 {
		result.AverageOrderValue = result.Revenue.Div(decimal.NewFromInt(int64(result.OrderCount)))
	}

	result.InventoryValuation = inventoryValuation
	result.OperatingExpenses = alloc.OperatingExpenses()
	result.Expenses = inventoryValuation.Add(result.OperatingExpenses)
	result.Balance = result.Revenue.Sub(result.Expenses)

	return result
}
