// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseDateLayout is the day-granularity layout of ExpenseRecord.OccurredOn.
const ExpenseDateLayout = "2006-01-02"

// ExpenseRecord is a discretionary, dated cost entry (an ad-hoc purchase).
type ExpenseRecord struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Name       string
	Amount     decimal.Decimal
	OccurredOn string // YYYY-MM-DD as entered by the company
	CreatedAt  time.Time
}

// FixedExpenses holds the standing monthly cost categories of a company.
// Amounts have no internal dating; they are monthly totals.
type FixedExpenses struct {
	CompanyID   uuid.UUID
	Employee    decimal.Decimal
	Electricity decimal.Decimal
	Purchase    decimal.Decimal
	UpdatedAt   time.Time
}

// MonthlyTotal returns the sum of all fixed categories for one month.
func (f *FixedExpenses) MonthlyTotal() decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return f.Employee.Add(f.Electricity).Add(f.Purchase)
}
