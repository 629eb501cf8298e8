package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	OrderNumber     string          `json:"order_number" gorm:"unique;not null"`
	RetailerID      *uint           `json:"retailer_id,omitempty"` // exactly one of RetailerID/CustomerID is set
	CustomerID      *uint           `json:"customer_id,omitempty"`
	OrderDate       time.Time       `json:"order_date" gorm:"not null"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	Status          string          `json:"status" gorm:"default:'pending'"` // pending, confirmed, processing, shipped, delivered
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:numeric(14,4);not null"`
	TaxRate         decimal.Decimal `json:"tax_rate" gorm:"type:numeric(6,4)"`
	TaxAmount       decimal.Decimal `json:"tax_amount" gorm:"type:numeric(14,4)"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:numeric(6,2)"`
	DiscountAmount  decimal.Decimal `json:"discount_amount" gorm:"type:numeric(14,4)"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:numeric(14,4);not null"`
	Notes           string          `json:"notes" gorm:"type:text"`
	CreatedBy       uint            `json:"created_by" gorm:"not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)
