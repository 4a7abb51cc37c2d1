// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// StockRepository defines read access to the current inventory of a company.
type StockRepository interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.StockItem, error)
}
