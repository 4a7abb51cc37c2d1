package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront-hub/backend/internal/domain/entity"
	"github.com/storefront-hub/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.OrderModel{},
		&model.CustomExpenseModel{},
		&model.FixedExpensesModel{},
		&model.ProductModel{},
	))
	return db
}

func TestOrderRepository_ListByCompany(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	companyID := uuid.New()
	confirmed := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&model.OrderModel{
		ID:            uuid.New(),
		CompanyID:     companyID,
		OrderCode:     "A-1",
		TotalAmount:   decimal.NewFromInt(1500),
		MarkupProfit:  decimal.NewFromInt(200),
		PaymentMethod: "demo_online",
		Status:        "confirmed",
		ConfirmedDate: &confirmed,
		CreatedDate:   &created,
	}).Error)
	require.NoError(t, db.Create(&model.OrderModel{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		OrderCode:     "B-1",
		TotalAmount:   decimal.NewFromInt(9000),
		PaymentMethod: "manual",
	}).Error)

	t.Run("returns only the company's orders", func(t *testing.T) {
		orders, err := repo.ListByCompany(ctx, companyID)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		order := orders[0]
		assert.Equal(t, "A-1", order.OrderCode)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1500)))
		assert.True(t, order.MarkupProfit.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, entity.PaymentMethodDemoOnline, order.PaymentMethod)
		assert.Empty(t, order.OrderDate)

		parsed, err := time.Parse(time.RFC3339Nano, order.ConfirmedDate)
		require.NoError(t, err)
		assert.True(t, confirmed.Equal(parsed))
	})

	t.Run("returns an empty list for an unknown company", func(t *testing.T) {
		orders, err := repo.ListByCompany(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestExpenseRepository_GetFixedExpenses(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("defaults to zero when nothing was entered", func(t *testing.T) {
		fixed, err := repo.GetFixedExpenses(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, companyID, fixed.CompanyID)
		assert.True(t, fixed.MonthlyTotal().IsZero())
	})

	t.Run("returns the stored monthly totals", func(t *testing.T) {
		require.NoError(t, db.Create(&model.FixedExpensesModel{
			CompanyID:           companyID,
			EmployeeExpenses:    decimal.NewFromInt(3000000),
			ElectricityExpenses: decimal.NewFromInt(500000),
			PurchaseCosts:       decimal.NewFromInt(1000000),
		}).Error)

		fixed, err := repo.GetFixedExpenses(ctx, companyID)
		require.NoError(t, err)
		assert.True(t, fixed.Employee.Equal(decimal.NewFromInt(3000000)))
		assert.True(t, fixed.MonthlyTotal().Equal(decimal.NewFromInt(4500000)))
	})
}

func TestExpenseRepository_ListCustomExpenses(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	companyID := uuid.New()

	for _, e := range []model.CustomExpenseModel{
		{ID: uuid.New(), CompanyID: companyID, Name: "Rent", Amount: decimal.NewFromInt(700), ExpenseDate: "2024-03-10"},
		{ID: uuid.New(), CompanyID: companyID, Name: "Courier", Amount: decimal.NewFromInt(50), ExpenseDate: "2024-03-01"},
		{ID: uuid.New(), CompanyID: companyID, Name: "Typo", Amount: decimal.NewFromInt(10), ExpenseDate: "10/03/2024"},
		{ID: uuid.New(), CompanyID: uuid.New(), Name: "Other", Amount: decimal.NewFromInt(999), ExpenseDate: "2024-03-10"},
	} {
		require.NoError(t, db.Create(&e).Error)
	}

	expenses, err := repo.ListCustomExpenses(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	// Malformed dates are passed through untouched.
	assert.Equal(t, "10/03/2024", expenses[0].OccurredOn)
	assert.Equal(t, "2024-03-01", expenses[1].OccurredOn)
	assert.Equal(t, "Rent", expenses[2].Name)
	assert.True(t, expenses[2].Amount.Equal(decimal.NewFromInt(700)))
}

func TestStockRepository_ListByCompany(t *testing.T) {
	db := newTestDB(t)
	repo := NewStockRepository(db)
	companyID := uuid.New()

	require.NoError(t, db.Create(&model.ProductModel{
		ID: uuid.New(), CompanyID: companyID, Name: "Tea", Price: decimal.RequireFromString("12.5"), Quantity: 4,
	}).Error)
	require.NoError(t, db.Create(&model.ProductModel{
		ID: uuid.New(), CompanyID: companyID, Name: "Coffee", Price: decimal.NewFromInt(30), Quantity: 0,
	}).Error)

	items, err := repo.ListByCompany(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Coffee", items[0].Name)
	assert.True(t, entity.InventoryValuation(items).Equal(decimal.NewFromInt(50)))
}
