package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a storefront account. The profile fields double as the seed for
// the checkout contact form: profile values win over a stored draft snapshot.
type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"size:100;not null" json:"name"`
	Phone           string         `gorm:"size:15;unique;not null" json:"phone"`
	Email           string         `gorm:"size:100" json:"email"`
	PasswordHash    string         `gorm:"size:255;not null" json:"-"`
	Role            string         `gorm:"size:20;default:'customer'" json:"role"`
	District        string         `gorm:"size:50" json:"district"`
	City            string         `gorm:"size:50" json:"city"`
	DetailedAddress string         `gorm:"type:text" json:"detailed_address"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
