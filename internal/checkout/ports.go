package checkout

import (
	"context"
	"time"

	"storefront-app/internal/models"
)

// Cart is the cart collaborator the composer reads at submission time.
// Only lines marked selected participate in an order.
type Cart interface {
	SelectedItems(ctx context.Context, userID uint) ([]models.CartItem, error)
	RemoveItems(ctx context.Context, userID uint, itemIDs []uint) error
}

// OrderService is the upstream order submission contract.
type OrderService interface {
	Submit(ctx context.Context, payload OrderPayload) (SubmitResult, error)
}

// CouponNotifier reports coupon usage upstream. Failures are non-fatal to
// order submission.
type CouponNotifier interface {
	NotifyUsage(ctx context.Context, code string) error
}

// OrderRecorder keeps the local copy of a successfully submitted order.
type OrderRecorder interface {
	Record(ctx context.Context, order *models.Order) error
}

// OrderPayload is the composed order sent to the order service.
type OrderPayload struct {
	StoreID        string        `json:"store_id"`
	SalesChannelID string        `json:"sales_channel_id"`
	CustomerName   string        `json:"customer_name"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	District       string        `json:"district"`
	City           string        `json:"city"`
	Address        string        `json:"address"`
	PaymentMethod  string        `json:"payment_method"`
	Items          []PayloadItem `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	DeliveryFee    float64       `json:"delivery_fee"`
	Discount       float64       `json:"discount"`
	CouponCode     string        `json:"coupon_code,omitempty"`
	Donation       float64       `json:"donation"`
	GrandTotal     float64       `json:"grand_total"`
	CreatedAt      time.Time     `json:"created_at"`
}

type PayloadItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Size      string  `json:"size"`
}

// SubmitResult is the order service response. InvoiceID may be empty on
// success; the composer falls back to a locally generated token.
type SubmitResult struct {
	Success   bool   `json:"success"`
	InvoiceID string `json:"invoice_id"`
	Error     string `json:"error,omitempty"`
}
