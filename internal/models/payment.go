package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"index;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(14,4);not null"`
	Method     string          `json:"method" gorm:"not null"` // bank_transfer, card, cash
	Reference  string          `json:"reference"`
	Status     string          `json:"status" gorm:"default:'received'"`
	ReceivedAt time.Time       `json:"received_at" gorm:"not null"`
	CreatedBy  uint            `json:"created_by" gorm:"not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentCash         PaymentMethod = "cash"
)

// ReportQuery stores a generated report payload for later retrieval.
type ReportQuery struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"not null"`
	QueryType   string     `json:"query_type" gorm:"not null"` // daily, monthly, custom_range
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ReportData  string     `json:"report_data" gorm:"type:json"`
	GeneratedAt time.Time  `json:"generated_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
