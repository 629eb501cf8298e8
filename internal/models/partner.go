package models

import (
	"time"

	"gorm.io/gorm"
)

// Wholesaler supplies products to the platform.
type Wholesaler struct {
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

// Designer is credited on products they designed.
type Designer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	FullName    string         `json:"full_name" gorm:"not null"`
	Email       string         `json:"email" gorm:"unique;not null"`
	PhoneNumber string         `json:"phone_number"`
	Portfolio   string         `json:"portfolio"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
