package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type deliveryStatusResponse struct {
	DeliveryStatus string `json:"delivery_status"`
}

// StatusByConsignmentID looks up the delivery status by consignment ID.
func (c *Client) StatusByConsignmentID(ctx context.Context, consignmentID int64) (string, error) {
	return c.status(ctx, "status_by_cid", fmt.Sprintf("/status_by_cid/%d", consignmentID))
}

// StatusByInvoice looks up the delivery status by merchant invoice.
func (c *Client) StatusByInvoice(ctx context.Context, invoice string) (string, error) {
	if invoice == "" {
		return "", &FieldError{Field: "invoice", Message: "must not be empty"}
	}
	return c.status(ctx, "status_by_invoice", "/status_by_invoice/"+url.PathEscape(invoice))
}

// StatusByTrackingCode looks up the delivery status by tracking code.
func (c *Client) StatusByTrackingCode(ctx context.Context, trackingCode string) (string, error) {
	if trackingCode == "" {
		return "", &FieldError{Field: "tracking_code", Message: "must not be empty"}
	}
	return c.status(ctx, "status_by_trackingcode", "/status_by_trackingcode/"+url.PathEscape(trackingCode))
}

func (c *Client) status(ctx context.Context, op, path string) (string, error) {
	var resp deliveryStatusResponse
	if err := c.do(ctx, op, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.DeliveryStatus, nil
}
