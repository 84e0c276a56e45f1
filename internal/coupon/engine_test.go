package coupon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	coupons []Coupon
	err     error
	calls   int
}

func (s *stubSource) FetchCoupons(context.Context) ([]Coupon, error) {
	s.calls++
	return s.coupons, s.err
}

func fixedEngine(src *stubSource, now time.Time) *Engine {
	e := NewEngine(src)
	e.now = func() time.Time { return now }
	return e
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validCoupon(code string) Coupon {
	return Coupon{
		Code:     code,
		Type:     TypePercentage,
		Amount:   10,
		ExpireAt: testNow.Add(24 * time.Hour),
	}
}

func TestApplyEmptyCode(t *testing.T) {
	src := &stubSource{}
	e := fixedEngine(src, testNow)

	state := e.Apply(context.Background(), "   ", 1000)

	assert.Nil(t, state.Applied)
	assert.Zero(t, state.Discount)
	assert.Equal(t, ErrEmptyCode.Error(), state.ErrorMessage)
	assert.Zero(t, src.calls, "empty code must not hit the catalog")
}

func TestApplyUnknownCode(t *testing.T) {
	src := &stubSource{coupons: []Coupon{validCoupon("SAVE10")}}
	e := fixedEngine(src, testNow)

	state := e.Apply(context.Background(), "NOPE", 1000)

	assert.Nil(t, state.Applied)
	assert.Zero(t, state.Discount)
	assert.Equal(t, ErrInvalidCode.Error(), state.ErrorMessage)
}

func TestApplyMatchesCaseInsensitively(t *testing.T) {
	src := &stubSource{coupons: []Coupon{validCoupon("SAVE10")}}
	e := fixedEngine(src, testNow)

	state := e.Apply(context.Background(), "  save10 ", 1000)

	require.NotNil(t, state.Applied)
	assert.Equal(t, "SAVE10", state.Applied.Code)
	assert.Equal(t, float64(100), state.Discount)
	assert.Empty(t, state.ErrorMessage)
}

func TestApplyExpiredResetsState(t *testing.T) {
	expired := validCoupon("OLD")
	expired.ExpireAt = testNow.Add(-time.Minute)
	src := &stubSource{coupons: []Coupon{expired}}
	e := fixedEngine(src, testNow)

	// Expiry wins even right after a successful apply of another code.
	ok := e.Apply(context.Background(), "OLD", 1000)

	assert.Nil(t, ok.Applied)
	assert.Zero(t, ok.Discount)
	assert.Equal(t, ErrExpired.Error(), ok.ErrorMessage)
}

func TestApplyMinimumNotMetSurfacesRequired(t *testing.T) {
	c := validCoupon("BIG")
	c.MinimumOrderAmount = 5000
	src := &stubSource{coupons: []Coupon{c}}
	e := fixedEngine(src, testNow)

	state := e.Apply(context.Background(), "BIG", 1000)

	assert.Nil(t, state.Applied)
	assert.Zero(t, state.Discount)
	assert.Contains(t, state.ErrorMessage, "5000")
}

func TestApplyFetchFailureResetsState(t *testing.T) {
	src := &stubSource{err: errors.New("upstream down")}
	e := fixedEngine(src, testNow)

	state := e.Apply(context.Background(), "SAVE10", 1000)

	assert.Nil(t, state.Applied)
	assert.Zero(t, state.Discount)
	assert.NotEmpty(t, state.ErrorMessage)
}

func TestApplyFetchesCatalogPerAttempt(t *testing.T) {
	src := &stubSource{coupons: []Coupon{validCoupon("SAVE10")}}
	e := fixedEngine(src, testNow)

	e.Apply(context.Background(), "SAVE10", 1000)
	e.Apply(context.Background(), "SAVE10", 1000)

	assert.Equal(t, 2, src.calls)
}

func TestRemoveResetsUnconditionally(t *testing.T) {
	src := &stubSource{coupons: []Coupon{validCoupon("SAVE10")}}
	e := fixedEngine(src, testNow)

	_ = e.Apply(context.Background(), "SAVE10", 1000)
	state := e.Remove()

	assert.Equal(t, State{}, state)
}

func TestValidatePercentageCappedByAmountLimit(t *testing.T) {
	c := Coupon{Code: "CAP", Type: TypePercentage, Amount: 10, AmountLimit: 50, ExpireAt: testNow.Add(time.Hour)}

	_, discount, err := Validate("CAP", 1000, []Coupon{c}, testNow)

	require.NoError(t, err)
	assert.Equal(t, float64(50), discount, "raw 100 clamps to the 50 cap")
}

func TestValidateFixedClampedToSubtotal(t *testing.T) {
	c := Coupon{Code: "FLAT", Type: TypeFixed, Amount: 2000, ExpireAt: testNow.Add(time.Hour)}

	_, discount, err := Validate("FLAT", 1000, []Coupon{c}, testNow)

	require.NoError(t, err)
	assert.Equal(t, float64(1000), discount)
}

func TestValidatePercentageRounds(t *testing.T) {
	c := Coupon{Code: "PCT", Type: TypePercentage, Amount: 7.5, ExpireAt: testNow.Add(time.Hour)}

	_, discount, err := Validate("PCT", 999, []Coupon{c}, testNow)

	require.NoError(t, err)
	assert.Equal(t, float64(75), discount) // round(74.925)
}

func TestValidateZeroAmountLimitMeansUncapped(t *testing.T) {
	c := Coupon{Code: "PCT", Type: TypePercentage, Amount: 50, ExpireAt: testNow.Add(time.Hour)}

	_, discount, err := Validate("PCT", 2000, []Coupon{c}, testNow)

	require.NoError(t, err)
	assert.Equal(t, float64(1000), discount)
}

// Discount stays within [0, subtotal] and within [0, limit] when a limit is
// set, across a spread of inputs.
func TestValidateDiscountBounds(t *testing.T) {
	subtotals := []float64{0, 1, 99, 1000, 99999}
	coupons := []Coupon{
		{Code: "A", Type: TypePercentage, Amount: 10, ExpireAt: testNow.Add(time.Hour)},
		{Code: "A", Type: TypePercentage, Amount: 100, AmountLimit: 200, ExpireAt: testNow.Add(time.Hour)},
		{Code: "A", Type: TypeFixed, Amount: 500, ExpireAt: testNow.Add(time.Hour)},
		{Code: "A", Type: TypeFixed, Amount: 500, AmountLimit: 100, ExpireAt: testNow.Add(time.Hour)},
		{Code: "A", Type: TypeFixed, Amount: -20, ExpireAt: testNow.Add(time.Hour)},
	}
	for _, sub := range subtotals {
		for _, c := range coupons {
			_, discount, err := Validate("A", sub, []Coupon{c}, testNow)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, discount, float64(0))
			assert.LessOrEqual(t, discount, sub)
			if c.AmountLimit > 0 {
				assert.LessOrEqual(t, discount, c.AmountLimit)
			}
		}
	}
}
