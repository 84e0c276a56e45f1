package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

// Coupon is one entry of the externally managed coupon catalog.
// AmountLimit of 0 means the discount is uncapped.
type Coupon struct {
	Code               string    `json:"code"`
	Type               Type      `json:"type"`
	Amount             float64   `json:"amount"`
	AmountLimit        float64   `json:"amount_limit"`
	MinimumOrderAmount float64   `json:"minimum_order_amount"`
	ExpireAt           time.Time `json:"expire_at"`
}

var (
	ErrEmptyCode   = errors.New("please enter a coupon code")
	ErrInvalidCode = errors.New("invalid coupon code")
	ErrExpired     = errors.New("this coupon has expired")
)

// MinimumNotMetError reports the minimum order amount the coupon requires so
// the message can surface it.
type MinimumNotMetError struct {
	Required float64
}

func (e *MinimumNotMetError) Error() string {
	return fmt.Sprintf("minimum order amount of %.0f required for this coupon", e.Required)
}

// CatalogSource fetches the current coupon catalog. It is consulted on every
// validation attempt; results are never cached across attempts.
type CatalogSource interface {
	FetchCoupons(ctx context.Context) ([]Coupon, error)
}

// State is the outcome of the latest apply/remove. Applied is non-nil exactly
// when ErrorMessage is empty; every failure path zeroes the discount.
type State struct {
	EnteredCode  string  `json:"entered_code"`
	Discount     float64 `json:"discount"`
	Applied      *Coupon `json:"applied_coupon"`
	ErrorMessage string  `json:"error_message,omitempty"`
}
