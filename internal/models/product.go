package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	SKU          string           `json:"sku" gorm:"unique;not null"`
	Name         string           `json:"name" gorm:"not null"`
	Description  string           `json:"description" gorm:"type:text"`
	UnitPrice    decimal.Decimal  `json:"unit_price" gorm:"type:numeric(12,4);not null"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty" gorm:"type:numeric(12,4)"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty" gorm:"type:numeric(6,4)"` // nil means platform default applies
	Category     string           `json:"category"`
	IsActive     bool             `json:"is_active" gorm:"default:true"`
	DesignerID   *uint            `json:"designer_id,omitempty"`
	WholesalerID *uint            `json:"wholesaler_id,omitempty"`
	CreatedBy    uint             `json:"created_by" gorm:"not null"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
}
