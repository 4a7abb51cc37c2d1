// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItem is a stock-keeping unit currently held by a company.
type StockItem struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	UnitCost  decimal.Decimal
	Quantity  int64
}

// InventoryValuation sums unit cost times quantity on hand over all items.
// Items with a non-positive quantity hold no capital and are skipped.
func InventoryValuation(items []*StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item == nil || item.Quantity <= 0 {
			continue
		}
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}
