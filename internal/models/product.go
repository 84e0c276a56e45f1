package models

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Products  []Product `json:"-"`
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Products    []Product `json:"-"`
}

type Product struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:150;not null" json:"name"`
	Slug        string         `gorm:"size:160;uniqueIndex" json:"slug"`
	BrandID     uint           `json:"brand_id"`
	Brand       Brand          `gorm:"foreignKey:BrandID" json:"brand"`
	CategoryID  *uint          `json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category"`
	Description string         `gorm:"type:text" json:"description"`
	UnitPrice   float64        `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Sizes       string         `gorm:"size:255" json:"sizes"` // comma-separated variant labels, empty if none
	ImageURL    string         `gorm:"size:500" json:"image_url"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
