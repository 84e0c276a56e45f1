package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront-app/internal/checkout"
)

// OrderClient submits composed orders to the order service and looks up
// their status for the tracking surface.
type OrderClient struct {
	baseURL string
	http    *http.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *OrderClient) Submit(ctx context.Context, payload checkout.OrderPayload) (checkout.SubmitResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return checkout.SubmitResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/orders", bytes.NewReader(body))
	if err != nil {
		return checkout.SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return checkout.SubmitResult{}, fmt.Errorf("order submission failed: %w", err)
	}
	defer resp.Body.Close()

	var result checkout.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return checkout.SubmitResult{}, fmt.Errorf("failed to decode order response: %w", err)
	}
	return result, nil
}

// OrderStatus is the tracking view of one submitted order.
type OrderStatus struct {
	InvoiceID string    `json:"invoice_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *OrderClient) Status(ctx context.Context, invoiceID string) (OrderStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/orders/"+invoiceID+"/status", nil)
	if err != nil {
		return OrderStatus{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return OrderStatus{}, fmt.Errorf("order status lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return OrderStatus{}, fmt.Errorf("order %s not found", invoiceID)
	}
	if resp.StatusCode != http.StatusOK {
		return OrderStatus{}, fmt.Errorf("order status lookup failed: status %d", resp.StatusCode)
	}

	var status OrderStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return OrderStatus{}, fmt.Errorf("failed to decode order status: %w", err)
	}
	return status, nil
}
