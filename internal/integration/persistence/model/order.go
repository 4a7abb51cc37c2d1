// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// OrderModel represents the customer_orders table in the database.
// The three date columns are nullable; which of them is set depends on the
// order's lifecycle.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderCode     string          `gorm:"type:varchar(32);not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MarkupProfit  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(20);not null;default:'manual'"`
	Status        string          `gorm:"type:varchar(20)"`
	ConfirmedDate *time.Time      `gorm:"type:timestamp"`
	OrderDate     *time.Time      `gorm:"type:timestamp"`
	CreatedDate   *time.Time      `gorm:"column:created_at;type:timestamp"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "customer_orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:            m.ID,
		CompanyID:     m.CompanyID,
		OrderCode:     m.OrderCode,
		TotalAmount:   m.TotalAmount,
		MarkupProfit:  m.MarkupProfit,
		PaymentMethod: entity.ParsePaymentMethod(m.PaymentMethod),
		Status:        m.Status,
		ConfirmedDate: entity.FormatOrderTimestamp(m.ConfirmedDate),
		OrderDate:     entity.FormatOrderTimestamp(m.OrderDate),
		CreatedDate:   entity.FormatOrderTimestamp(m.CreatedDate),
	}
}
