package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/entity"
)

// Cached source names, used as the middle segment of the cache key.
const (
	SourceOrders         = "orders"
	SourceFixedExpenses  = "fixed-expenses"
	SourceCustomExpenses = "custom-expenses"
	SourceStock          = "stock"
)

type cachedOrderRepository struct {
	next  adapter.OrderRepository
	cache *JSONCache
}

// NewCachedOrderRepository wraps an OrderRepository with a read-through cache.
func NewCachedOrderRepository(next adapter.OrderRepository, cache *JSONCache) adapter.OrderRepository {
	return &cachedOrderRepository{next: next, cache: cache}
}

func (r *cachedOrderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.cache.FetchJSON(ctx, r.cache.Key(SourceOrders, companyID.String()), &orders,
		func(ctx context.Context) (any, error) {
			return r.next.ListByCompany(ctx, companyID)
		})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

type cachedExpenseRepository struct {
	next  adapter.ExpenseRepository
	cache *JSONCache
}

// NewCachedExpenseRepository wraps an ExpenseRepository with a read-through cache.
func NewCachedExpenseRepository(next adapter.ExpenseRepository, cache *JSONCache) adapter.ExpenseRepository {
	return &cachedExpenseRepository{next: next, cache: cache}
}

func (r *cachedExpenseRepository) GetFixedExpenses(ctx context.Context, companyID uuid.UUID) (*entity.FixedExpenses, error) {
	var fixed *entity.FixedExpenses
	err := r.cache.FetchJSON(ctx, r.cache.Key(SourceFixedExpenses, companyID.String()), &fixed,
		func(ctx context.Context) (any, error) {
			return r.next.GetFixedExpenses(ctx, companyID)
		})
	if err != nil {
		return nil, err
	}
	return fixed, nil
}

func (r *cachedExpenseRepository) ListCustomExpenses(ctx context.Context, companyID uuid.UUID) ([]*entity.ExpenseRecord, error) {
	var expenses []*entity.ExpenseRecord
	err := r.cache.FetchJSON(ctx, r.cache.Key(SourceCustomExpenses, companyID.String()), &expenses,
		func(ctx context.Context) (any, error) {
			return r.next.ListCustomExpenses(ctx, companyID)
		})
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

type cachedStockRepository struct {
	next  adapter.StockRepository
	cache *JSONCache
}

// NewCachedStockRepository wraps a StockRepository with a read-through cache.
func NewCachedStockRepository(next adapter.StockRepository, cache *JSONCache) adapter.StockRepository {
	return &cachedStockRepository{next: next, cache: cache}
}

func (r *cachedStockRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.StockItem, error) {
	var items []*entity.StockItem
	err := r.cache.FetchJSON(ctx, r.cache.Key(SourceStock, companyID.String()), &items,
		func(ctx context.Context) (any, error) {
			return r.next.ListByCompany(ctx, companyID)
		})
	if err != nil {
		return nil, err
	}
	return items, nil
}
