package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

func TestProportionalMultiplier(t *testing.T) {
	tenDays := &DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		kind   valueobject.PeriodKind
		custom *DateRange
		want   valueobject.Multiplier
	}{
		{valueobject.PeriodToday, nil, valueobject.Multiplier{Num: 1, Den: 30}},
		{valueobject.PeriodYesterday, nil, valueobject.Multiplier{Num: 1, Den: 30}},
		{valueobject.PeriodLast7Days, nil, valueobject.Multiplier{Num: 7, Den: 30}},
		{valueobject.PeriodLast30Days, nil, valueobject.Multiplier{Num: 1, Den: 1}},
		{valueobject.PeriodLast365Days, nil, valueobject.Multiplier{Num: 12, Den: 1}},
		{valueobject.PeriodCustom, tenDays, valueobject.Multiplier{Num: 10, Den: 30}},
		{valueobject.PeriodAllTime, nil, valueobject.Multiplier{Num: 1, Den: 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r, err := Resolve(tt.kind, fixedNow, tt.custom)
			require.NoError(t, err)

			got := ProportionalMultiplier(r)
			assert.True(t, tt.want.Decimal().Equal(got.Decimal()), "want %v, got %v", tt.want, got)
		})
	}
}

func TestProportionalMultiplier_ScalingBoundaries(t *testing.T) {
	month, err := Resolve(valueobject.PeriodLast30Days, fixedNow, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ProportionalMultiplier(month).Float64())

	week, err := Resolve(valueobject.PeriodLast7Days, fixedNow, nil)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/30.0, ProportionalMultiplier(week).Float64(), 1e-12)
}

func TestAllocate_FixedShareLastSevenDays(t *testing.T) {
	r, err := Resolve(valueobject.PeriodLast7Days, fixedNow, nil)
	require.NoError(t, err)

	fixed := &entity.FixedExpenses{
		Employee:    decimal.NewFromInt(3000000),
		Electricity: decimal.NewFromInt(500000),
		Purchase:    decimal.NewFromInt(1000000),
	}

	alloc := Allocate(fixed, nil, r)

	assertMoney(t, "1050000", alloc.FixedShare)
	assertMoney(t, "700000", alloc.Employee)
	assertMoney(t, "116666.666667", alloc.Electricity)
	assertMoney(t, "233333.333333", alloc.Purchase)
	assert.True(t, alloc.DiscretionaryShare.IsZero())
}

func TestAllocate_DiscretionaryFilteredByRange(t *testing.T) {
	r, err := Resolve(valueobject.PeriodLast7Days, fixedNow, nil)
	require.NoError(t, err)

	records := []*entity.ExpenseRecord{
		expenseOn(100, "2024-03-10"),
		expenseOn(200, "2024-03-15"),
		expenseOn(400, "2024-03-01"),
		expenseOn(800, "2024-03-16"),
		expenseOn(1600, "yesterday"),
		nil,
	}

	alloc := Allocate(nil, records, r)

	assertMoney(t, "300", alloc.DiscretionaryShare)
	assert.Equal(t, 2, alloc.DiscretionaryCount)
	assert.Equal(t, 1, alloc.MalformedExpenseDates)
	assert.True(t, alloc.FixedShare.IsZero())
}

func TestAllocate_AllTimeCountsEverything(t *testing.T) {
	r, err := Resolve(valueobject.PeriodAllTime, fixedNow, nil)
	require.NoError(t, err)

	fixed := &entity.FixedExpenses{
		Employee:    decimal.NewFromInt(3000),
		Electricity: decimal.NewFromInt(500),
		Purchase:    decimal.NewFromInt(1000),
	}
	records := []*entity.ExpenseRecord{
		expenseOn(100, "2019-01-01"),
		expenseOn(200, "2030-12-31"),
		expenseOn(400, ""),
	}

	alloc := Allocate(fixed, records, r)

	assertMoney(t, "4500", alloc.FixedShare)
	assertMoney(t, "700", alloc.DiscretionaryShare)
	assert.Equal(t, 0, alloc.MalformedExpenseDates)
	assertMoney(t, "5200", alloc.OperatingExpenses())
}

func TestAllocate_TodayIncludesTodaysExpenses(t *testing.T) {
	r, err := Resolve(valueobject.PeriodToday, fixedNow, nil)
	require.NoError(t, err)

	alloc := Allocate(nil, []*entity.ExpenseRecord{
		expenseOn(50, "2024-03-15"),
		expenseOn(70, "2024-03-14"),
	}, r)

	assertMoney(t, "50", alloc.DiscretionaryShare)
}
