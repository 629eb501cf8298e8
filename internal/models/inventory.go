package models

import (
	"time"
)

type InventoryRecord struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ProductID       uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	QuantityInStock int       `json:"quantity_in_stock" gorm:"not null;default:0"`
	ReorderLevel    int       `json:"reorder_level" gorm:"not null;default:0"`
	ReorderQuantity int       `json:"reorder_quantity" gorm:"not null;default:0"` // advisory restock amount
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// InventoryMovement is an append-only ledger row recording every stock
// adjustment, including clamped over-decrements.
type InventoryMovement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ProductID     uint      `json:"product_id" gorm:"index;not null"`
	Delta         int       `json:"delta"`
	QuantityAfter int       `json:"quantity_after" gorm:"not null"`
	Reason        string    `json:"reason" gorm:"not null"` // manual_adjustment, absolute_set, order_submission
	Clamped       bool      `json:"clamped" gorm:"default:false"`
	CreatedBy     uint      `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

const (
	MovementManualAdjustment = "manual_adjustment"
	MovementAbsoluteSet      = "absolute_set"
	MovementOrderSubmission  = "order_submission"
)
