package analytics

import (
	"time"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// Diagnostics counts data-quality problems recovered during an evaluation.
// None of them abort a report; the affected records are excluded instead.
type Diagnostics struct {
	MissingTimestamps     int `json:"missing_timestamps"`
	UnparseableTimestamps int `json:"unparseable_timestamps"`
	MalformedExpenseDates int `json:"malformed_expense_dates"`
}

// ExcludedOrders returns how many orders could not be placed in any period.
func (d Diagnostics) ExcludedOrders() int {
	return d.MissingTimestamps + d.UnparseableTimestamps
}

// IsClean reports whether no record was excluded.
func (d Diagnostics) IsClean() bool {
	return d.ExcludedOrders() == 0 && d.MalformedExpenseDates == 0
}

// StampedOrder pairs an order with its selected timestamp.
type StampedOrder struct {
	Order *entity.Order
	At    time.Time
}

// StampOrders selects the timestamp of every order once. Orders without a
// usable timestamp are dropped and counted; input order is preserved.
func StampOrders(orders []*entity.Order, loc *time.Location) ([]StampedOrder, Diagnostics) {
	var diag Diagnostics
	stamped := make([]StampedOrder, 0, len(orders))

	for _, order := range orders {
		at, status := SelectTimestamp(order, loc)
		switch status {
		case TimestampMissing:
			diag.MissingTimestamps++
		case TimestampUnparseable:
			diag.UnparseableTimestamps++
		default:
			stamped = append(stamped, StampedOrder{Order: order, At: at})
		}
	}

	return stamped, diag
}

// FilterStamped keeps the orders whose timestamp lies inside r.
func FilterStamped(stamped []StampedOrder, r PeriodRange) []StampedOrder {
	filtered := make([]StampedOrder, 0, len(stamped))
	for _, so := range stamped {
		if r.Contains(so.At) {
			filtered = append(filtered, so)
		}
	}
	return filtered
}

// FilterOrders returns the subset of orders that fall inside r, in their
// original order. Orders without a valid timestamp are excluded from every
// range, all-time included, and reported in the diagnostics.
func FilterOrders(orders []*entity.Order, r PeriodRange) ([]*entity.Order, Diagnostics) {
	stamped, diag := StampOrders(orders, r.Location())
	return unstamp(FilterStamped(stamped, r)), diag
}

func unstamp(stamped []StampedOrder) []*entity.Order {
	orders := make([]*entity.Order, len(stamped))
	for i, so := range stamped {
		orders[i] = so.Order
	}
	return orders
}
