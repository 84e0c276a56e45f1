package models

import "time"

// Order statuses mirror the upstream order service's lifecycle.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentMethodCOD   = "cod"
	PaymentMethodBKash = "bkash"
	PaymentMethodNagad = "nagad"
)

var PaymentMethods = []string{
	PaymentMethodCOD,
	PaymentMethodBKash,
	PaymentMethodNagad,
}

// Order is the local record of a submitted order, kept for the customer's
// tracking list. The upstream order service owns the authoritative copy.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	InvoiceID       string      `gorm:"size:64;uniqueIndex;not null" json:"invoice_id"`
	UserID          uint        `gorm:"index" json:"user_id"`
	CustomerName    string      `gorm:"size:100;not null" json:"customer_name"`
	Phone           string      `gorm:"size:15;not null" json:"phone"`
	Email           string      `gorm:"size:100" json:"email"`
	District        string      `gorm:"size:50;not null" json:"district"`
	City            string      `gorm:"size:50;not null" json:"city"`
	DetailedAddress string      `gorm:"type:text" json:"detailed_address"`
	PaymentMethod   string      `gorm:"size:20;default:'cod'" json:"payment_method"`
	Subtotal        float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee     float64     `gorm:"type:decimal(10,2);not null" json:"delivery_fee"`
	Discount        float64     `gorm:"type:decimal(10,2);default:0.00" json:"discount"`
	CouponCode      string      `gorm:"size:50" json:"coupon_code"`
	Donation        float64     `gorm:"type:decimal(10,2);default:0.00" json:"donation"`
	GrandTotal      float64     `gorm:"type:decimal(10,2);not null" json:"grand_total"`
	Status          string      `gorm:"size:30;default:'pending'" json:"status"`
	PlacedAt        time.Time   `json:"placed_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `gorm:"size:150" json:"product_name"`
	Size        string  `gorm:"size:50" json:"size"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `gorm:"type:decimal(10,2)" json:"unit_price"`
}
