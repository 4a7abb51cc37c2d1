// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// OrderRepository defines read access to a company's customer orders.
type OrderRepository interface {
	// ListByCompany returns every order of the company in source order.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Order, error)
}
