package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierkit/steadfast/internal/client/mocks"
)

func newTestClient(t *testing.T, baseURL string, opts ...func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		BaseURL:   baseURL,
		APIKey:    "test-api-key",
		SecretKey: "test-secret-key",
		Logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(Config{SecretKey: "s"})
	require.Error(t, err)

	_, err = New(Config{APIKey: "k"})
	require.Error(t, err)

	c, err := New(Config{APIKey: "k", SecretKey: "s"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestDoSendsAuthHeaders(t *testing.T) {
	var gotAPIKey, gotSecretKey, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("Api-Key")
		gotSecretKey = r.Header.Get("Secret-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"current_balance": 250.5}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	balance, err := c.GetBalance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 250.5, balance.CurrentBalance)
	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "test-secret-key", gotSecretKey)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoClassifiesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, func(cfg *Config) { cfg.Timeout = 20 * time.Millisecond })

	_, err := c.GetBalance(context.Background())
	require.Error(t, err)
	assert.True(t, IsTimeout(err), "expected timeout classification, got %v", err)
	assert.False(t, IsNetwork(err))
}

func TestDoClassifiesNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doer := mocks.NewMockDoer(ctrl)
	doer.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

	c := newTestClient(t, "http://steadfast.invalid", func(cfg *Config) { cfg.HTTPClient = doer })

	_, err := c.GetBalance(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err), "expected network classification, got %v", err)
	assert.False(t, IsTimeout(err))
}

func TestDoClassifiesHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid credentials"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.GetBalance(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindHTTPStatus, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestDoHTTPStatusWithoutProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.GetBalance(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Internal Server Error", apiErr.Message)
}

func TestDoClassifiesDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{broken"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.GetBalance(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindDecode, apiErr.Kind)
}

func TestStatusLookups(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"delivery_status": "delivered"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	status, err := c.StatusByConsignmentID(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, "delivered", status)
	assert.Equal(t, "/status_by_cid/12345", gotPath)

	_, err = c.StatusByInvoice(ctx, "INV-67890")
	require.NoError(t, err)
	assert.Equal(t, "/status_by_invoice/INV-67890", gotPath)

	_, err = c.StatusByTrackingCode(ctx, "TRK123")
	require.NoError(t, err)
	assert.Equal(t, "/status_by_trackingcode/TRK123", gotPath)

	_, err = c.StatusByInvoice(ctx, "")
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "invoice", fieldErr.Field)
}

func TestReturnRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/create_return_request":
			w.Write([]byte(`{"return_request": {"id": 7, "consignment_id": 12345, "status": "pending"}}`))
		case "/get_return_request/7":
			w.Write([]byte(`{"return_request": {"id": 7, "consignment_id": 12345, "status": "approved"}}`))
		case "/get_return_requests":
			w.Write([]byte(`{"return_requests": [{"id": 7}, {"id": 8}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	created, err := c.CreateReturnRequest(ctx, ReturnRequestInput{ConsignmentID: 12345})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	fetched, err := c.GetReturnRequest(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "approved", fetched.Status)

	all, err := c.ListReturnRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = c.CreateReturnRequest(ctx, ReturnRequestInput{})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
}

func TestReferenceData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_payments":
			w.Write([]byte(`{"payments": [{"id": 1, "amount": 900.0}]}`))
		case "/police_stations":
			w.Write([]byte(`{"police_stations": [{"id": 1, "name": "Dhanmondi", "district": "Dhaka"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	payments, err := c.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 900.0, payments[0].Amount)

	stations, err := c.ListPoliceStations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Dhanmondi", stations[0].Name)
}
