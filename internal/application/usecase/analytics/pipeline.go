package analytics

import (
	"time"

	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// Snapshot is the materialized input of one evaluation.
type Snapshot struct {
	Orders         []*entity.Order
	FixedExpenses  *entity.FixedExpenses
	CustomExpenses []*entity.ExpenseRecord
	Stock          []*entity.StockItem
}

// Request selects the period to evaluate. Now is captured once by the
// caller and used for every stage.
type Request struct {
	Period valueobject.PeriodKind
	Custom *DateRange
	Now    time.Time

	// WithTrend asks for the bucket series; it fails for all-time.
	WithTrend bool
}

// Report is the result of one evaluation.
type Report struct {
	Range      PeriodRange
	Allocation Allocation
	Summary    Balance

	// Comparison is nil for all-time.
	Comparison *PeriodComparison

	// Trend is nil unless requested.
	Trend *BucketSeries

	Diagnostics Diagnostics
}

// Evaluate runs the engine over a snapshot. Orders are stamped and filtered
// once per period; every metric is derived from those filtered sets.
// Range and contract errors are returned before any aggregation happens.
func Evaluate(snapshot Snapshot, req Request) (*Report, error) {
	current, err := Resolve(req.Period, req.Now, req.Custom)
	if err != nil {
		return nil, err
	}

	if req.WithTrend {
		if _, err := planBuckets(current); err != nil {
			return nil, err
		}
	}

	stamped, diag := StampOrders(snapshot.Orders, req.Now.Location())
	inventory := entity.InventoryValuation(snapshot.Stock)

	currentOrders := FilterStamped(stamped, current)
	alloc := Allocate(snapshot.FixedExpenses, snapshot.CustomExpenses, current)
	diag.MalformedExpenseDates = alloc.MalformedExpenseDates

	report := &Report{
		Range:       current,
		Allocation:  alloc,
		Summary:     ComputeBalance(unstamp(currentOrders), alloc, inventory),
		Diagnostics: diag,
	}

	previous, ok := PreviousOf(current)
	if !ok {
		return report, nil
	}

	previousOrders := FilterStamped(stamped, previous)
	previousAlloc := Allocate(snapshot.FixedExpenses, snapshot.CustomExpenses, previous)
	previousSummary := ComputeBalance(unstamp(previousOrders), previousAlloc, inventory)
	report.Comparison = compareBalances(report.Summary, previousSummary, previous)

	if req.WithTrend {
		series, err := Bucketize(currentOrders, previousOrders, current, previous)
		if err != nil {
			return nil, err
		}
		report.Trend = &series
	}

	return report, nil
}
