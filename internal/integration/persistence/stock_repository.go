// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/integration/persistence/model"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository instance.
func NewStockRepository(db *gorm.DB) adapter.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// ListByCompany retrieves the company's products with their cost and quantity on hand.
func (r *stockRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.StockItem, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query products: %w", result.Error)
	}

	items := make([]*entity.StockItem, len(productModels))
	for i := range productModels {
		items[i] = productModels[i].ToEntity()
	}
	return items, nil
}
