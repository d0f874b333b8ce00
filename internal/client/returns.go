package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreateReturnRequest opens a return request for an existing consignment.
func (c *Client) CreateReturnRequest(ctx context.Context, input ReturnRequestInput) (*ReturnRequest, error) {
	if input.ConsignmentID <= 0 {
		return nil, &FieldError{Field: "consignment_id", Message: "must be positive"}
	}

	var resp struct {
		ReturnRequest ReturnRequest `json:"return_request"`
	}
	if err := c.do(ctx, "create_return_request", http.MethodPost, "/create_return_request", input, &resp); err != nil {
		return nil, err
	}
	return &resp.ReturnRequest, nil
}

// GetReturnRequest fetches one return request by its ID.
func (c *Client) GetReturnRequest(ctx context.Context, id int64) (*ReturnRequest, error) {
	if id <= 0 {
		return nil, &FieldError{Field: "id", Message: "must be positive"}
	}

	var resp struct {
		ReturnRequest ReturnRequest `json:"return_request"`
	}
	if err := c.do(ctx, "get_return_request", http.MethodGet, fmt.Sprintf("/get_return_request/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.ReturnRequest, nil
}

// ListReturnRequests fetches all return requests for the account.
func (c *Client) ListReturnRequests(ctx context.Context) ([]ReturnRequest, error) {
	var resp struct {
		ReturnRequests []ReturnRequest `json:"return_requests"`
	}
	if err := c.do(ctx, "get_return_requests", http.MethodGet, "/get_return_requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ReturnRequests, nil
}
