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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListByCompany retrieves every order of a company. Orders are not filtered
// by date here; the analytics engine decides which timestamp applies.
func (r *orderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&orderModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query orders: %w", result.Error)
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}
