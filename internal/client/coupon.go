package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-app/internal/coupon"
)

// CouponClient talks to the coupon service. It implements the coupon
// engine's catalog source and the composer's usage notifier.
type CouponClient struct {
	baseURL string
	http    *http.Client
}

func NewCouponClient(baseURL string) *CouponClient {
	return &CouponClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchCoupons returns the current coupon catalog. Called per validation
// attempt; nothing is cached here.
func (c *CouponClient) FetchCoupons(ctx context.Context) ([]coupon.Coupon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/coupons", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coupon catalog fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coupon catalog fetch failed: status %d", resp.StatusCode)
	}

	var coupons []coupon.Coupon
	if err := json.NewDecoder(resp.Body).Decode(&coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupon catalog: %w", err)
	}
	return coupons, nil
}

// NotifyUsage records one use of code with the coupon service.
func (c *CouponClient) NotifyUsage(ctx context.Context, code string) error {
	body, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/coupons/usage", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("coupon usage notification failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("coupon usage notification failed: status %d", resp.StatusCode)
	}
	return nil
}
