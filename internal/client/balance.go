package client

import (
	"context"
	"net/http"
)

// GetBalance retrieves the account's current balance.
func (c *Client) GetBalance(ctx context.Context) (*Balance, error) {
	var resp Balance
	if err := c.do(ctx, "get_balance", http.MethodGet, "/get_balance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
