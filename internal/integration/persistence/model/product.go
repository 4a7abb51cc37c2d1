// Package model defines database models for persistence layer.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront-hub/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity  int64           `gorm:"not null;default:0"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain StockItem entity.
func (m *ProductModel) ToEntity() *entity.StockItem {
	return &entity.StockItem{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		Name:      m.Name,
		UnitCost:  m.Price,
		Quantity:  m.Quantity,
	}
}
