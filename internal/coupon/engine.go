package coupon

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Engine validates entered codes against the external catalog and computes
// the bounded discount. It holds no catalog state of its own.
type Engine struct {
	source CatalogSource
	now    func() time.Time
}

func NewEngine(source CatalogSource) *Engine {
	return &Engine{source: source, now: time.Now}
}

// Apply runs a full validation of code against a fresh catalog fetch. The
// returned state is complete either way: a success carries the applied coupon
// and its discount, any failure carries a zero discount and the message to
// surface. Re-applying restarts validation from scratch.
func (e *Engine) Apply(ctx context.Context, code string, subtotal float64) State {
	entered := strings.TrimSpace(code)
	if entered == "" {
		return failed(entered, ErrEmptyCode)
	}

	catalog, err := e.source.FetchCoupons(ctx)
	if err != nil {
		return failed(entered, fmt.Errorf("could not verify coupon, please try again: %w", err))
	}

	match, discount, err := Validate(entered, subtotal, catalog, e.now())
	if err != nil {
		return failed(entered, err)
	}

	applied := match
	return State{
		EnteredCode: entered,
		Discount:    discount,
		Applied:     &applied,
	}
}

// Remove resets the coupon state unconditionally.
func (e *Engine) Remove() State {
	return State{}
}

func failed(entered string, err error) State {
	return State{EnteredCode: entered, ErrorMessage: err.Error()}
}

// Validate finds code in catalog and computes its discount for subtotal.
// Matching is case-insensitive. The discount is clamped first to the coupon's
// amount limit when one is set, then to the subtotal, so it never exceeds
// what the order costs and is never negative.
func Validate(code string, subtotal float64, catalog []Coupon, now time.Time) (Coupon, float64, error) {
	var match *Coupon
	for i := range catalog {
		if strings.EqualFold(catalog[i].Code, code) {
			match = &catalog[i]
			break
		}
	}
	if match == nil {
		return Coupon{}, 0, ErrInvalidCode
	}

	if now.After(match.ExpireAt) {
		return Coupon{}, 0, ErrExpired
	}

	if match.MinimumOrderAmount > 0 && subtotal < match.MinimumOrderAmount {
		return Coupon{}, 0, &MinimumNotMetError{Required: match.MinimumOrderAmount}
	}

	var discount float64
	switch match.Type {
	case TypePercentage:
		discount = math.Round(subtotal * match.Amount / 100)
	default:
		discount = match.Amount
	}

	if match.AmountLimit > 0 && discount > match.AmountLimit {
		discount = match.AmountLimit
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}

	return *match, discount, nil
}
