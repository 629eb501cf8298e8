package models

import (
	"time"

	"gorm.io/gorm"
)

// Retailer is a business buyer on the platform.
type Retailer struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	BusinessName string         `json:"business_name" gorm:"not null"`
	ContactName  string         `json:"contact_name"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PhoneNumber  string         `json:"phone_number"`
	Address      string         `json:"address" gorm:"type:text"`
	IsActive     bool           `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Customer is an individual buyer.
type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	FullName    string         `json:"full_name" gorm:"not null"`
	Email       string         `json:"email" gorm:"unique;not null"`
	PhoneNumber string         `json:"phone_number"`
	Address     string         `json:"address" gorm:"type:text"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
