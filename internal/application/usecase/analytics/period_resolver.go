// Package analytics contains the period-aggregation and expense-allocation engine
// together with the use cases that feed it.
package analytics

import (
	"time"

	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// DateRange is a caller-supplied pair of dates for the custom period.
// Only the calendar date of each bound is significant.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PeriodRange is an inclusive [Start, End] window of instants.
// The all-time range is unbounded and contains every instant.
type PeriodRange struct {
	Kind    valueobject.PeriodKind
	Start   time.Time
	End     time.Time
	Bounded bool
}

// Contains reports whether t lies inside the range, bounds included.
func (r PeriodRange) Contains(t time.Time) bool {
	if !r.Bounded {
		return true
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the inclusive number of calendar days the range touches.
// Unbounded ranges report zero.
func (r PeriodRange) Days() int {
	if !r.Bounded {
		return 0
	}
	loc := r.Location()
	return daysBetween(r.Start.In(loc), r.End.In(loc)) + 1
}

// Location returns the time zone the range was resolved in.
func (r PeriodRange) Location() *time.Location {
	if r.Start.IsZero() {
		return time.UTC
	}
	return r.Start.Location()
}

// Resolve turns a period kind into a concrete range anchored at now.
// now is never read from a global clock; the range inherits now's location.
func Resolve(kind valueobject.PeriodKind, now time.Time, custom *DateRange) (PeriodRange, error) {
	switch kind {
	case valueobject.PeriodToday:
		return dayRange(kind, now), nil

	case valueobject.PeriodYesterday:
		return dayRange(kind, now.AddDate(0, 0, -1)), nil

	case valueobject.PeriodLast7Days:
		return PeriodRange{Kind: kind, Start: now.AddDate(0, 0, -7), End: now, Bounded: true}, nil

	case valueobject.PeriodLast30Days:
		return PeriodRange{Kind: kind, Start: now.AddDate(0, -1, 0), End: now, Bounded: true}, nil

	case valueobject.PeriodLast365Days:
		return PeriodRange{Kind: kind, Start: now.AddDate(-1, 0, 0), End: now, Bounded: true}, nil

	case valueobject.PeriodCustom:
		return resolveCustom(now.Location(), custom)

	case valueobject.PeriodAllTime:
		return PeriodRange{Kind: kind}, nil
	}

	return PeriodRange{}, domainerror.NewAnalyticsError(
		domainerror.ErrCodeUnknownPeriod,
		"unknown period "+string(kind),
		domainerror.ErrUnknownPeriod,
	)
}

func resolveCustom(loc *time.Location, custom *DateRange) (PeriodRange, error) {
	if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
		return PeriodRange{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeMissingCustomRange,
			"custom period requires start_date and end_date",
			domainerror.ErrMissingCustomRange,
		)
	}
	if custom.Start.After(custom.End) {
		return PeriodRange{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidRange,
			"start_date must not be after end_date",
			domainerror.ErrInvalidRange,
		)
	}

	start := midnight(custom.Start, loc)
	end := endOfDay(custom.End, loc)

	return PeriodRange{Kind: valueobject.PeriodCustom, Start: start, End: end, Bounded: true}, nil
}

// PreviousOf returns the window of equal length immediately preceding r.
// The second return value is false for all-time, which has no predecessor.
// The returned range ends one nanosecond before r starts, so the two never overlap.
func PreviousOf(r PeriodRange) (PeriodRange, bool) {
	if !r.Bounded {
		return PeriodRange{}, false
	}

	var start time.Time
	switch r.Kind {
	case valueobject.PeriodToday, valueobject.PeriodYesterday:
		start = r.Start.AddDate(0, 0, -1)
	case valueobject.PeriodLast7Days:
		start = r.Start.AddDate(0, 0, -7)
	case valueobject.PeriodLast30Days:
		start = r.Start.AddDate(0, -1, 0)
	case valueobject.PeriodLast365Days:
		start = r.Start.AddDate(-1, 0, 0)
	case valueobject.PeriodCustom:
		start = r.Start.AddDate(0, 0, -r.Days())
	default:
		return PeriodRange{}, false
	}

	return PeriodRange{
		Kind:    r.Kind,
		Start:   start,
		End:     r.Start.Add(-time.Nanosecond),
		Bounded: true,
	}, true
}

func dayRange(kind valueobject.PeriodKind, day time.Time) PeriodRange {
	loc := day.Location()
	return PeriodRange{Kind: kind, Start: midnight(day, loc), End: endOfDay(day, loc), Bounded: true}
}

// midnight returns 00:00 of t's calendar date, interpreted in loc.
func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// endOfDay returns the last representable instant of t's calendar date in loc.
func endOfDay(t time.Time, loc *time.Location) time.Time {
	return midnight(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// daysBetween counts calendar days from a to b using civil dates,
// so DST transitions never shift the result.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
