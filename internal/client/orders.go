package client

import (
	"context"
	"fmt"
	"net/http"
)

// MaxBulkOrders is the provider's cap on one bulk submission.
const MaxBulkOrders = 500

// CreateOrder submits a single delivery order. Field validation runs
// before any I/O; validation failures are *FieldError.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (*Consignment, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	var resp struct {
		Consignment Consignment `json:"consignment"`
	}
	if err := c.do(ctx, "create_order", http.MethodPost, "/create_order", order, &resp); err != nil {
		return nil, err
	}
	return &resp.Consignment, nil
}

// CreateBulkOrders submits up to MaxBulkOrders orders in one call. Every
// order is validated locally first; one bad order rejects the whole batch
// before any I/O.
func (c *Client) CreateBulkOrders(ctx context.Context, orders []OrderRequest) ([]BulkOrderResult, error) {
	if len(orders) == 0 {
		return nil, &FieldError{Field: "data", Message: "at least one order is required"}
	}
	if len(orders) > MaxBulkOrders {
		return nil, &FieldError{Field: "data", Message: fmt.Sprintf("at most %d orders per call, got %d", MaxBulkOrders, len(orders))}
	}
	for i, order := range orders {
		if err := validateOrder(order); err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
	}

	req := struct {
		Data []OrderRequest `json:"data"`
	}{Data: orders}

	var resp struct {
		Data []BulkOrderResult `json:"data"`
	}
	if err := c.do(ctx, "create_bulk_orders", http.MethodPost, "/create_order/bulk-order", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
