package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// Allocation is the reporting-period share of a company's costs.
type Allocation struct {
	Multiplier valueobject.Multiplier

	// Scaled fixed categories.
	Employee    decimal.Decimal
	Electricity decimal.Decimal
	Purchase    decimal.Decimal

	FixedShare         decimal.Decimal
	DiscretionaryShare decimal.Decimal
	DiscretionaryCount int

	// MalformedExpenseDates counts records left out because their date did not parse.
	MalformedExpenseDates int
}

// OperatingExpenses returns the allocated costs without inventory.
func (a Allocation) OperatingExpenses() decimal.Decimal {
	return a.FixedShare.Add(a.DiscretionaryShare)
}

// ProportionalMultiplier returns the factor applied to monthly fixed costs
// for r, using a 30-day reference month. The scaling is a linear
// approximation; fixed costs carry no dates of their own.
func ProportionalMultiplier(r PeriodRange) valueobject.Multiplier {
	switch r.Kind {
	case valueobject.PeriodToday, valueobject.PeriodYesterday:
		return valueobject.Multiplier{Num: 1, Den: valueobject.ReferenceMonthDays}
	case valueobject.PeriodLast7Days:
		return valueobject.Multiplier{Num: 7, Den: valueobject.ReferenceMonthDays}
	case valueobject.PeriodLast30Days:
		return valueobject.Unit
	case valueobject.PeriodLast365Days:
		return valueobject.Multiplier{Num: 12, Den: 1}
	case valueobject.PeriodCustom:
		return valueobject.Multiplier{Num: int64(r.Days()), Den: valueobject.ReferenceMonthDays}
	default:
		// all-time: fixed categories count once, unscaled.
		return valueobject.Unit
	}
}

// Allocate computes the fixed-category share and the discretionary share of r.
// For all-time every discretionary record counts; otherwise only records
// whose day falls inside r. A record's day is taken as its midnight in the
// range's location.
func Allocate(fixed *entity.FixedExpenses, records []*entity.ExpenseRecord, r PeriodRange) Allocation {
	m := ProportionalMultiplier(r)

	alloc := Allocation{
		Multiplier:         m,
		Employee:           decimal.Zero,
		Electricity:        decimal.Zero,
		Purchase:           decimal.Zero,
		FixedShare:         decimal.Zero,
		DiscretionaryShare: decimal.Zero,
	}

	if fixed != nil {
		alloc.Employee = m.Apply(fixed.Employee)
		alloc.Electricity = m.Apply(fixed.Electricity)
		alloc.Purchase = m.Apply(fixed.Purchase)
		alloc.FixedShare = alloc.Employee.Add(alloc.Electricity).Add(alloc.Purchase)
	}

	loc := r.Location()
	for _, record := range records {
		if record == nil {
			continue
		}
		if r.Bounded {
			day, ok := ParseTimestamp(record.OccurredOn, loc)
			if !ok {
				alloc.MalformedExpenseDates++
				continue
			}
			if !r.Contains(day) {
				continue
			}
		}
		alloc.DiscretionaryShare = alloc.DiscretionaryShare.Add(record.Amount)
		alloc.DiscretionaryCount++
	}

	return alloc
}
