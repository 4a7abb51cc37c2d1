package analytics

import (
	"strings"
	"time"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// TimestampStatus classifies the outcome of selecting an order's timestamp.
type TimestampStatus int

const (
	TimestampValid TimestampStatus = iota
	TimestampMissing
	TimestampUnparseable
)

// zonedLayouts carry their own offset; naiveLayouts are read in the report location.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999Z07:00",
		"2006-01-02 15:04:05.999999999Z07",
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		entity.ExpenseDateLayout,
	}
)

// ParseTimestamp parses a raw date value. Values without a zone are
// interpreted in loc; zoned values are converted to loc.
func ParseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SelectTimestamp returns the authoritative instant of an order: the
// confirmation date, else the order date, else the creation date.
// Only the first present candidate is considered; if it does not parse the
// order has no usable timestamp and later candidates are not consulted.
func SelectTimestamp(order *entity.Order, loc *time.Location) (time.Time, TimestampStatus) {
	if order == nil {
		return time.Time{}, TimestampMissing
	}
	for _, candidate := range order.CandidateDates() {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		t, ok := ParseTimestamp(candidate, loc)
		if !ok {
			return time.Time{}, TimestampUnparseable
		}
		return t, TimestampValid
	}
	return time.Time{}, TimestampMissing
}
