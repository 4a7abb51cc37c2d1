// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// CustomExpenseModel represents the company_custom_expenses table in the database.
// ExpenseDate is kept as entered by the storefront and parsed by the engine.
type CustomExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExpenseDate string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CustomExpenseModel.
func (CustomExpenseModel) TableName() string {
	return "company_custom_expenses"
}

// ToEntity converts a CustomExpenseModel to a domain ExpenseRecord entity.
func (m *CustomExpenseModel) ToEntity() *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:         m.ID,
		CompanyID:  m.CompanyID,
		Name:       m.Name,
		Amount:     m.Amount,
		OccurredOn: m.ExpenseDate,
		CreatedAt:  m.CreatedAt,
	}
}

// FixedExpensesModel represents the company_expenses table: one row of
// monthly totals per company.
type FixedExpensesModel struct {
	CompanyID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeExpenses    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ElectricityExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PurchaseCosts       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpensesModel.
func (FixedExpensesModel) TableName() string {
	return "company_expenses"
}

// ToEntity converts a FixedExpensesModel to a domain FixedExpenses entity.
func (m *FixedExpensesModel) ToEntity() *entity.FixedExpenses {
	return &entity.FixedExpenses{
		CompanyID:   m.CompanyID,
		Employee:    m.EmployeeExpenses,
		Electricity: m.ElectricityExpenses,
		Purchase:    m.PurchaseCosts,
		UpdatedAt:   m.UpdatedAt,
	}
}
