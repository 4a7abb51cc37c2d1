package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePeriodKind(t *testing.T) {
	tests := []struct {
		token string
		want  PeriodKind
		ok    bool
	}{
		{"today", PeriodToday, true},
		{"yesterday", PeriodYesterday, true},
		{"last-7-days", PeriodLast7Days, true},
		{"last-30-days", PeriodLast30Days, true},
		{"last-365-days", PeriodLast365Days, true},
		{"custom", PeriodCustom, true},
		{"all-time", PeriodAllTime, true},
		{"day", PeriodToday, true},
		{"week", PeriodLast7Days, true},
		{"month", PeriodLast30Days, true},
		{"year", PeriodLast365Days, true},
		{"all", PeriodAllTime, true},
		{" Week ", PeriodLast7Days, true},
		{"quarter", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParsePeriodKind(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodKind_Classification(t *testing.T) {
	assert.True(t, PeriodLast30Days.IsRolling())
	assert.False(t, PeriodToday.IsRolling())
	assert.False(t, PeriodCustom.IsRolling())

	assert.True(t, PeriodYesterday.IsSingleDay())
	assert.False(t, PeriodLast7Days.IsSingleDay())
}

func TestMultiplier_Apply(t *testing.T) {
	amount := decimal.NewFromInt(4500000)

	t.Run("seven thirtieths", func(t *testing.T) {
		got := Multiplier{Num: 7, Den: ReferenceMonthDays}.Apply(amount)
		assert.True(t, got.Equal(decimal.NewFromInt(1050000)), got.String())
	})

	t.Run("twelve months", func(t *testing.T) {
		got := Multiplier{Num: 12, Den: 1}.Apply(amount)
		assert.True(t, got.Equal(decimal.NewFromInt(54000000)), got.String())
	})

	t.Run("unit leaves the amount untouched", func(t *testing.T) {
		assert.True(t, Unit.Apply(amount).Equal(amount))
	})

	t.Run("zero denominator is treated as unit", func(t *testing.T) {
		assert.True(t, Multiplier{}.Apply(amount).Equal(amount))
	})
}

func TestMultiplier_Float64(t *testing.T) {
	assert.InDelta(t, 0.2333333, Multiplier{Num: 7, Den: 30}.Float64(), 1e-6)
	assert.Equal(t, 1.0, Unit.Float64())
}
