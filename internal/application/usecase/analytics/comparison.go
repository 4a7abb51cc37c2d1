package analytics

import "github.com/shopspring/decimal"

// MetricComparison holds a metric for the current and the previous period.
type MetricComparison struct {
	Current   decimal.Decimal
	Previous  decimal.Decimal
	ChangePct *float64 // nil when the previous value is zero
}

// PeriodComparison is the period-over-period view of a summary.
type PeriodComparison struct {
	PreviousRange PeriodRange
	Revenue       MetricComparison
	Expenses      MetricComparison
	Balance       MetricComparison
	OrderCount    MetricComparison
}

func compareBalances(current, previous Balance, previousRange PeriodRange) *PeriodComparison {
	return &PeriodComparison{
		PreviousRange: previousRange,
		Revenue:       compareMetric(current.Revenue, previous.Revenue),
		Expenses:      compareMetric(current.Expenses, previous.Expenses),
		Balance:       compareMetric(current.Balance, previous.Balance),
		OrderCount: compareMetric(
			decimal.NewFromInt(int64(current.OrderCount)),
			decimal.NewFromInt(int64(previous.OrderCount)),
		),
	}
}

func compareMetric(current, previous decimal.Decimal) MetricComparison {
	return MetricComparison{
		Current:   current,
		Previous:  previous,
		ChangePct: changePct(current, previous),
	}
}

// changePct returns the percentage change from previous to current.
// The divisor is |previous| so a recovery from a loss reads as growth.
func changePct(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}
	pct, _ := current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return &pct
}
