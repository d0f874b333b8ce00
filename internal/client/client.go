// Package client implements the outbound Steadfast courier API client.
//
// Every operation is a single authenticated request/response pair; there is
// no retry or backoff at this layer. Failures are classified into one
// APIError shape: timeout, network, non-2xx status, or decode.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/courierkit/steadfast/internal/log"
	"github.com/courierkit/steadfast/internal/metrics"
)

// DefaultBaseURL is the provider's production API endpoint.
const DefaultBaseURL = "https://portal.packzy.com/api/v1"

// DefaultTimeout bounds each call unless Config.Timeout overrides it.
const DefaultTimeout = 30 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 * 1024 * 1024

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL   string
	APIKey    string
	SecretKey string
	Timeout   time.Duration

	// HTTPClient overrides the default transport, mainly for tests.
	HTTPClient Doer

	Logger *slog.Logger
}

// Client is a Steadfast courier API client. Safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	timeout   time.Duration
	http      Doer
	logger    *slog.Logger
}

// New builds a Client. Both credentials are required.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("steadfast: APIKey is required")
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("steadfast: SecretKey is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithComponent("client")
	}
	return &Client{
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		timeout:   timeout,
		http:      httpClient,
		logger:    logger,
	}, nil
}

// do issues one authenticated call and decodes the 2xx response into out.
// op names the operation for logging and metrics.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("steadfast: failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("steadfast: failed to build %s request: %w", op, err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Secret-Key", c.secretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	metrics.ClientDuration.WithLabelValues(op).Observe(elapsed.Seconds())

	if err != nil {
		apiErr := classifyTransportError(reqCtx, err)
		c.observe(op, string(apiErr.Kind), requestID, elapsed, 0)
		return apiErr
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.observe(op, string(KindNetwork), requestID, elapsed, resp.StatusCode)
		return &APIError{Kind: KindNetwork, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(op, string(KindHTTPStatus), requestID, elapsed, resp.StatusCode)
		return &APIError{
			Kind:       KindHTTPStatus,
			StatusCode: resp.StatusCode,
			Message:    providerMessage(payload, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			c.observe(op, string(KindDecode), requestID, elapsed, resp.StatusCode)
			return &APIError{Kind: KindDecode, Message: "failed to decode response body", Err: err}
		}
	}

	c.observe(op, "ok", requestID, elapsed, resp.StatusCode)
	return nil
}

func (c *Client) observe(op, outcome, requestID string, elapsed time.Duration, status int) {
	metrics.ClientRequests.WithLabelValues(op, outcome).Inc()
	c.logger.Debug("api call",
		"op", op,
		"outcome", outcome,
		"status", status,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", requestID,
	)
}

// classifyTransportError separates deadline expiry from other transport
// failures.
func classifyTransportError(reqCtx context.Context, err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &APIError{Kind: KindTimeout, Message: "request timed out", Err: err}
	}
	return &APIError{Kind: KindNetwork, Message: "request failed", Err: err}
}

// providerMessage pulls the provider's error text out of a non-2xx body,
// falling back to the HTTP status text.
func providerMessage(payload []byte, statusCode int) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(statusCode)
}
