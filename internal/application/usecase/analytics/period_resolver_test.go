package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

func TestResolve(t *testing.T) {
	endOf := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 23, 59, 59, 999999999, tashkent)
	}

	tests := []struct {
		name      string
		kind      valueobject.PeriodKind
		custom    *DateRange
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"today", valueobject.PeriodToday, nil, at(2024, 3, 15, 0, 0), endOf(2024, 3, 15)},
		{"yesterday", valueobject.PeriodYesterday, nil, at(2024, 3, 14, 0, 0), endOf(2024, 3, 14)},
		{"last 7 days", valueobject.PeriodLast7Days, nil, at(2024, 3, 8, 14, 30), fixedNow},
		{"last 30 days", valueobject.PeriodLast30Days, nil, at(2024, 2, 15, 14, 30), fixedNow},
		{"last 365 days", valueobject.PeriodLast365Days, nil, at(2023, 3, 15, 14, 30), fixedNow},
		{
			"custom normalizes to whole days",
			valueobject.PeriodCustom,
			&DateRange{
				Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			},
			at(2024, 3, 1, 0, 0),
			endOf(2024, 3, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(tt.kind, fixedNow, tt.custom)
			require.NoError(t, err)

			assert.True(t, r.Bounded)
			assert.Equal(t, tt.kind, r.Kind)
			assert.True(t, tt.wantStart.Equal(r.Start), "start: want %s, got %s", tt.wantStart, r.Start)
			assert.True(t, tt.wantEnd.Equal(r.End), "end: want %s, got %s", tt.wantEnd, r.End)
			assert.False(t, r.Start.After(r.End))
		})
	}
}

func TestResolve_CustomDays(t *testing.T) {
	r, err := Resolve(valueobject.PeriodCustom, fixedNow, &DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, r.Days())

	single, err := Resolve(valueobject.PeriodCustom, fixedNow, &DateRange{
		Start: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, single.Days())
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		kind     valueobject.PeriodKind
		custom   *DateRange
		wantErr  error
		wantCode domainerror.AnalyticsErrorCode
	}{
		{
			name: "custom start after end",
			kind: valueobject.PeriodCustom,
			custom: &DateRange{
				Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr:  domainerror.ErrInvalidRange,
			wantCode: domainerror.ErrCodeInvalidRange,
		},
		{
			name:     "custom without dates",
			kind:     valueobject.PeriodCustom,
			wantErr:  domainerror.ErrMissingCustomRange,
			wantCode: domainerror.ErrCodeMissingCustomRange,
		},
		{
			name:     "unknown kind",
			kind:     valueobject.PeriodKind("fortnight"),
			wantErr:  domainerror.ErrUnknownPeriod,
			wantCode: domainerror.ErrCodeUnknownPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.kind, fixedNow, tt.custom)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var analyticsErr *domainerror.AnalyticsError
			require.True(t, errors.As(err, &analyticsErr))
			assert.Equal(t, tt.wantCode, analyticsErr.Code)
		})
	}
}

func TestResolve_AllTimeIsUnbounded(t *testing.T) {
	r, err := Resolve(valueobject.PeriodAllTime, fixedNow, nil)
	require.NoError(t, err)

	assert.False(t, r.Bounded)
	assert.Equal(t, 0, r.Days())
	assert.True(t, r.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(fixedNow.AddDate(10, 0, 0)))
}

func TestPreviousOf(t *testing.T) {
	resolve := func(kind valueobject.PeriodKind, custom *DateRange) PeriodRange {
		r, err := Resolve(kind, fixedNow, custom)
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name      string
		current   PeriodRange
		wantStart time.Time
	}{
		{"today becomes yesterday", resolve(valueobject.PeriodToday, nil), at(2024, 3, 14, 0, 0)},
		{"yesterday becomes the day before", resolve(valueobject.PeriodYesterday, nil), at(2024, 3, 13, 0, 0)},
		{"last 7 days shifts a week", resolve(valueobject.PeriodLast7Days, nil), at(2024, 3, 1, 14, 30)},
		{"last 30 days shifts a month", resolve(valueobject.PeriodLast30Days, nil), at(2024, 1, 15, 14, 30)},
		{"last 365 days shifts a year", resolve(valueobject.PeriodLast365Days, nil), at(2022, 3, 15, 14, 30)},
		{
			"custom shifts by its day count",
			resolve(valueobject.PeriodCustom, &DateRange{
				Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			}),
			at(2024, 2, 20, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, ok := PreviousOf(tt.current)
			require.True(t, ok)

			assert.Equal(t, tt.current.Kind, prev.Kind)
			assert.True(t, tt.wantStart.Equal(prev.Start), "start: want %s, got %s", tt.wantStart, prev.Start)
			assert.True(t, prev.End.Equal(tt.current.Start.Add(-time.Nanosecond)))

			// The two windows never share an instant.
			assert.False(t, prev.Contains(tt.current.Start))
			assert.False(t, tt.current.Contains(prev.End))
		})
	}
}

func TestPreviousOf_CustomKeepsLength(t *testing.T) {
	r, err := Resolve(valueobject.PeriodCustom, fixedNow, &DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	prev, ok := PreviousOf(r)
	require.True(t, ok)
	assert.Equal(t, r.Days(), prev.Days())
}

func TestPreviousOf_AllTimeHasNoPredecessor(t *testing.T) {
	r, err := Resolve(valueobject.PeriodAllTime, fixedNow, nil)
	require.NoError(t, err)

	_, ok := PreviousOf(r)
	assert.False(t, ok)
}

func TestPartition_EveryStampedOrderIsInsideOrOutside(t *testing.T) {
	r, err := Resolve(valueobject.PeriodLast7Days, fixedNow, nil)
	require.NoError(t, err)
	prev, ok := PreviousOf(r)
	require.True(t, ok)

	instants := []time.Time{
		r.Start, r.End, r.Start.Add(-time.Nanosecond), r.End.Add(time.Nanosecond),
		prev.Start, prev.End, at(2024, 3, 10, 12, 0), at(2023, 1, 1, 0, 0),
	}

	for _, instant := range instants {
		inCurrent := r.Contains(instant)
		inPrevious := prev.Contains(instant)
		assert.False(t, inCurrent && inPrevious, "instant %s is in both windows", instant)
	}
}
