// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// ExpenseRepository defines read access to a company's cost data.
type ExpenseRepository interface {
	// GetFixedExpenses returns the monthly fixed categories.
	// A company without recorded fixed costs yields zero amounts, not an error.
	GetFixedExpenses(ctx context.Context, companyID uuid.UUID) (*entity.FixedExpenses, error)

	// ListCustomExpenses returns every discretionary expense record of the company.
	ListCustomExpenses(ctx context.Context, companyID uuid.UUID) ([]*entity.ExpenseRecord, error)
}
