// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a customer paid for an order.
type PaymentMethod string

const (
	PaymentMethodManual     PaymentMethod = "manual"
	PaymentMethodDemoOnline PaymentMethod = "demo-online"
	PaymentMethodRealOnline PaymentMethod = "real-online"
)

// ParsePaymentMethod normalizes the spellings used by the storefront.
// Unknown or empty values are treated as manual (check/code) payments.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "demo-online", "demo_online":
		return PaymentMethodDemoOnline
	case "real-online", "real_online":
		return PaymentMethodRealOnline
	default:
		return PaymentMethodManual
	}
}

// Order represents a customer order as seen by the analytics engine.
// The date fields hold the raw values delivered by the data source; they are
// parsed lazily so malformed values can be reported instead of dropped silently.
type Order struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	OrderCode     string
	TotalAmount   decimal.Decimal
	MarkupProfit  decimal.Decimal // Seller margin already included in TotalAmount
	PaymentMethod PaymentMethod
	Status        string
	ConfirmedDate string
	OrderDate     string
	CreatedDate   string
}

// CandidateDates returns the raw date candidates in precedence order:
// confirmation, placement, creation.
func (o *Order) CandidateDates() [3]string {
	return [3]string{o.ConfirmedDate, o.OrderDate, o.CreatedDate}
}

// FormatOrderTimestamp renders an optional timestamp the way orders carry them.
func FormatOrderTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
