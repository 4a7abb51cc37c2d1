package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/storefront-hub/backend/internal/application/adapter"
	"github.com/storefront-hub/backend/internal/domain/entity"
)

// SnapshotLoader fetches everything an evaluation needs for one company.
type SnapshotLoader struct {
	orderRepo   adapter.OrderRepository
	expenseRepo adapter.ExpenseRepository
	stockRepo   adapter.StockRepository
}

// NewSnapshotLoader creates a new SnapshotLoader instance.
func NewSnapshotLoader(
	orderRepo adapter.OrderRepository,
	expenseRepo adapter.ExpenseRepository,
	stockRepo adapter.StockRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		stockRepo:   stockRepo,
	}
}

// Load retrieves orders, fixed and custom expenses, and stock in parallel.
func (l *SnapshotLoader) Load(ctx context.Context, companyID uuid.UUID) (Snapshot, error) {
	var (
		orders   []*entity.Order
		fixed    *entity.FixedExpenses
		expenses []*entity.ExpenseRecord
		stock    []*entity.StockItem
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		orders, err = l.orderRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		fixed, err = l.expenseRepo.GetFixedExpenses(ctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get fixed expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		expenses, err = l.expenseRepo.ListCustomExpenses(ctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list custom expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		stock, err = l.stockRepo.ListByCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("failed to list stock: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Orders:         orders,
		FixedExpenses:  fixed,
		CustomExpenses: expenses,
		Stock:          stock,
	}, nil
}
