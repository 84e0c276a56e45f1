package models

import "time"

// CartItem is one line in a customer's cart. Product name and unit price are
// snapshotted at add time so the line survives later catalog edits. Only
// lines with Selected set participate in checkout.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	Product     Product   `gorm:"foreignKey:ProductID" json:"product"`
	ProductName string    `gorm:"size:150" json:"product_name"`
	UnitPrice   float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Size        string    `gorm:"size:50" json:"size"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Selected    bool      `gorm:"default:true" json:"selected"`
	AddedAt     time.Time `gorm:"autoCreateTime" json:"added_at"`
}
