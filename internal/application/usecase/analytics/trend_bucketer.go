package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/storefront-hub/backend/internal/domain/error"
	"github.com/storefront-hub/backend/internal/domain/valueobject"
)

// BucketUnit is the time slot a trend bucket represents.
type BucketUnit string

const (
	BucketUnitHour        BucketUnit = "hour"
	BucketUnitWeekday     BucketUnit = "weekday"
	BucketUnitWeekOfMonth BucketUnit = "week-of-month"
	BucketUnitMonth       BucketUnit = "month"
	BucketUnitDayOffset   BucketUnit = "day"
	BucketUnitWeekOffset  BucketUnit = "week"
	BucketUnitMonthOffset BucketUnit = "30-days"
)

// Custom-range span thresholds, in days.
const (
	hourlyMaxDays = 1
	dailyMaxDays  = 7
	weeklyMaxDays = 31
)

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Bucket is one slot of a trend series.
type Bucket struct {
	Index    int
	Label    string
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// BucketSeries is the aligned current/previous trend of a period,
// ordered by bucket index.
type BucketSeries struct {
	Unit    BucketUnit
	Buckets []Bucket
}

// TotalCurrent sums the current values of all buckets.
func (s BucketSeries) TotalCurrent() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Buckets {
		total = total.Add(b.Current)
	}
	return total
}

// TotalPrevious sums the previous values of all buckets.
func (s BucketSeries) TotalPrevious() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Buckets {
		total = total.Add(b.Previous)
	}
	return total
}

// bucketPlan describes how a range is partitioned.
type bucketPlan struct {
	unit  BucketUnit
	count int
}

func planBuckets(r PeriodRange) (bucketPlan, error) {
	switch r.Kind {
	case valueobject.PeriodToday, valueobject.PeriodYesterday:
		return bucketPlan{unit: BucketUnitHour, count: 24}, nil
	case valueobject.PeriodLast7Days:
		return bucketPlan{unit: BucketUnitWeekday, count: 7}, nil
	case valueobject.PeriodLast30Days:
		return bucketPlan{unit: BucketUnitWeekOfMonth, count: 4}, nil
	case valueobject.PeriodLast365Days:
		return bucketPlan{unit: BucketUnitMonth, count: 12}, nil
	case valueobject.PeriodCustom:
		days := r.Days()
		switch {
		case days <= hourlyMaxDays:
			return bucketPlan{unit: BucketUnitHour, count: 24}, nil
		case days <= dailyMaxDays:
			return bucketPlan{unit: BucketUnitDayOffset, count: days}, nil
		case days <= weeklyMaxDays:
			return bucketPlan{unit: BucketUnitWeekOffset, count: ceilDiv(days, 7)}, nil
		default:
			return bucketPlan{unit: BucketUnitMonthOffset, count: ceilDiv(days, 30)}, nil
		}
	}

	return bucketPlan{}, domainerror.NewAnalyticsError(
		domainerror.ErrCodeUndefinedBucketing,
		"trend series is undefined for period "+string(r.Kind),
		domainerror.ErrUndefinedBucketing,
	)
}

// Bucketize partitions the current and previous orders into the buckets of
// current's period kind and sums their totals. Offset-based units use each
// range's own start as anchor. Out-of-range indices are clamped, so every
// order's amount lands in exactly one bucket.
func Bucketize(current, previous []StampedOrder, currentRange, previousRange PeriodRange) (BucketSeries, error) {
	plan, err := planBuckets(currentRange)
	if err != nil {
		return BucketSeries{}, err
	}

	buckets := make([]Bucket, plan.count)
	for i := range buckets {
		buckets[i] = Bucket{
			Index:    i,
			Label:    bucketLabel(plan.unit, i),
			Current:  decimal.Zero,
			Previous: decimal.Zero,
		}
	}

	for _, so := range current {
		idx := bucketIndex(plan, so.At, currentRange)
		buckets[idx].Current = buckets[idx].Current.Add(so.Order.TotalAmount)
	}
	for _, so := range previous {
		idx := bucketIndex(plan, so.At, previousRange)
		buckets[idx].Previous = buckets[idx].Previous.Add(so.Order.TotalAmount)
	}

	return BucketSeries{Unit: plan.unit, Buckets: buckets}, nil
}

func bucketIndex(plan bucketPlan, at time.Time, anchor PeriodRange) int {
	loc := anchor.Location()
	t := at.In(loc)

	var idx int
	switch plan.unit {
	case BucketUnitHour:
		idx = t.Hour()
	case BucketUnitWeekday:
		// time.Weekday counts from Sunday; buckets start on Monday.
		idx = (int(t.Weekday()) + 6) % 7
	case BucketUnitWeekOfMonth:
		idx = (t.Day() - 1) / 7
	case BucketUnitMonth:
		idx = int(t.Month()) - 1
	case BucketUnitDayOffset:
		idx = floorDiv(daysBetween(anchor.Start.In(loc), t), 1)
	case BucketUnitWeekOffset:
		idx = floorDiv(daysBetween(anchor.Start.In(loc), t), 7)
	case BucketUnitMonthOffset:
		idx = floorDiv(daysBetween(anchor.Start.In(loc), t), 30)
	}

	return clamp(idx, 0, plan.count-1)
}

func bucketLabel(unit BucketUnit, idx int) string {
	switch unit {
	case BucketUnitHour:
		return fmt.Sprintf("%d:00", idx)
	case BucketUnitWeekday:
		return weekdayLabels[idx]
	case BucketUnitMonth:
		return monthLabels[idx]
	case BucketUnitDayOffset:
		return fmt.Sprintf("Day %d", idx+1)
	case BucketUnitMonthOffset:
		return fmt.Sprintf("Month %d", idx+1)
	default:
		return fmt.Sprintf("Week %d", idx+1)
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
