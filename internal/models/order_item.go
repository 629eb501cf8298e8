package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is the persisted form of an engine line item. UnitPrice is the
// snapshot captured when the item was added, not a live product reference.
// DiscountAmount is always written as zero: discounts are tracked only at the
// order aggregate level.
type OrderItem struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrderID        uint            `json:"order_id" gorm:"index;not null"`
	ProductID      uint            `json:"product_id" gorm:"not null"`
	ProductName    string          `json:"product_name" gorm:"not null"`
	Quantity       int             `json:"quantity" gorm:"not null"`
	UnitPrice      decimal.Decimal `json:"unit_price" gorm:"type:numeric(12,4);not null"`
	LineTotal      decimal.Decimal `json:"line_total" gorm:"type:numeric(14,4);not null"`
	TaxRate        decimal.Decimal `json:"tax_rate" gorm:"type:numeric(6,4)"`
	DiscountAmount decimal.Decimal `json:"discount_amount" gorm:"type:numeric(14,4)"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}
