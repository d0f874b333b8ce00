package client

import (
	"context"
	"net/http"
)

// ListPayments fetches the account's settlement history.
func (c *Client) ListPayments(ctx context.Context) ([]Payment, error) {
	var resp struct {
		Payments []Payment `json:"payments"`
	}
	if err := c.do(ctx, "get_payments", http.MethodGet, "/get_payments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

// ListPoliceStations fetches the provider's police-station reference data.
func (c *Client) ListPoliceStations(ctx context.Context) ([]PoliceStation, error) {
	var resp struct {
		PoliceStations []PoliceStation `json:"police_stations"`
	}
	if err := c.do(ctx, "police_stations", http.MethodGet, "/police_stations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PoliceStations, nil
}
