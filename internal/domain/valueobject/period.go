// Package valueobject contains domain value objects for the storefront analytics system.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PeriodKind is a named reporting window.
type PeriodKind string

const (
	PeriodToday       PeriodKind = "today"
	PeriodYesterday   PeriodKind = "yesterday"
	PeriodLast7Days   PeriodKind = "last-7-days"
	PeriodLast30Days  PeriodKind = "last-30-days"
	PeriodLast365Days PeriodKind = "last-365-days"
	PeriodCustom      PeriodKind = "custom"
	PeriodAllTime     PeriodKind = "all-time"
)

// periodAliases maps the storefront dashboard tokens to period kinds.
var periodAliases = map[string]PeriodKind{
	"day":   PeriodToday,
	"week":  PeriodLast7Days,
	"month": PeriodLast30Days,
	"year":  PeriodLast365Days,
	"all":   PeriodAllTime,
}

// ParsePeriodKind resolves a period token. The second return value is false
// for unknown tokens.
func ParsePeriodKind(token string) (PeriodKind, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	switch kind := PeriodKind(normalized); kind {
	case PeriodToday, PeriodYesterday, PeriodLast7Days, PeriodLast30Days,
		PeriodLast365Days, PeriodCustom, PeriodAllTime:
		return kind, true
	}
	if kind, ok := periodAliases[normalized]; ok {
		return kind, true
	}
	return "", false
}

// IsRolling reports whether the period is a window ending at "now".
func (k PeriodKind) IsRolling() bool {
	return k == PeriodLast7Days || k == PeriodLast30Days || k == PeriodLast365Days
}

// IsSingleDay reports whether the period covers exactly one calendar day.
func (k PeriodKind) IsSingleDay() bool {
	return k == PeriodToday || k == PeriodYesterday
}

// ReferenceMonthDays is the month length used for proportional scaling.
const ReferenceMonthDays = 30

// Multiplier is the proportional factor applied to a monthly amount,
// kept as an exact fraction so 7/30 does not drift.
type Multiplier struct {
	Num int64
	Den int64
}

// Unit is the identity multiplier.
var Unit = Multiplier{Num: 1, Den: 1}

// Apply scales amount by the multiplier.
func (m Multiplier) Apply(amount decimal.Decimal) decimal.Decimal {
	if m.Den == 0 || m.Den == m.Num {
		return amount
	}
	return amount.Mul(decimal.NewFromInt(m.Num)).Div(decimal.NewFromInt(m.Den))
}

// Decimal returns the multiplier as a decimal value.
func (m Multiplier) Decimal() decimal.Decimal {
	if m.Den == 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(m.Num).Div(decimal.NewFromInt(m.Den))
}

// Float64 returns the multiplier as a float, for display only.
func (m Multiplier) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}
