// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// GetFixedExpenses retrieves the monthly fixed costs of a company.
// A company that never entered them gets zero amounts.
func (r *expenseRepository) GetFixedExpenses(ctx context.Context, companyID uuid.UUID) (*entity.FixedExpenses, error) {
	var fixedModel model.FixedExpensesModel
	result := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&fixedModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return &entity.FixedExpenses{
				CompanyID:   companyID,
				Employee:    decimal.Zero,
				Electricity: decimal.Zero,
				Purchase:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("failed to query fixed expenses: %w", result.Error)
	}
	return fixedModel.ToEntity(), nil
}

// ListCustomExpenses retrieves every discretionary expense of a company.
func (r *expenseRepository) ListCustomExpenses(ctx context.Context, companyID uuid.UUID) ([]*entity.ExpenseRecord, error) {
	var expenseModels []model.CustomExpenseModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("expense_date ASC").
		Order("created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query custom expenses: %w", result.Error)
	}

	expenses := make([]*entity.ExpenseRecord, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}
