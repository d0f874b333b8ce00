package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer(t *testing.T) (*Server, *Handler) {
	t.Helper()
	h, err := New(Config{Token: testToken, Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	srv := NewServer(ServerConfig{Listen: "127.0.0.1:0"}, h, slog.New(slog.DiscardHandler))
	return srv, h
}

func postWebhook(t *testing.T, srv *Server, body []byte, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/webhook/steadfast", bytes.NewReader(body))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	srv.setupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestServerValidWebhook(t *testing.T) {
	srv, h := testServer(t)

	invoked := 0
	h.OnDeliveryStatus(func(ctx context.Context, p DeliveryStatusPayload) error {
		invoked++
		if p.Invoice != "INV-67890" {
			t.Errorf("Invoice = %v, want INV-67890", p.Invoice)
		}
		return nil
	})

	body, _ := json.Marshal(deliveryStatusBody())
	rec := postWebhook(t, srv, body, "Bearer "+testToken)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if invoked != 1 {
		t.Errorf("callback invoked %d times, want 1", invoked)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %v, want success", resp.Status)
	}
	if resp.Message != SuccessMessage {
		t.Errorf("Message = %v, want %q", resp.Message, SuccessMessage)
	}
}

func TestServerWrongToken(t *testing.T) {
	srv, _ := testServer(t)

	body, _ := json.Marshal(deliveryStatusBody())
	rec := postWebhook(t, srv, body, "Bearer wrong-token")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("Status = %v, want error", resp.Status)
	}
	if resp.Message != "Invalid authentication token" {
		t.Errorf("Message = %v", resp.Message)
	}
}

func TestServerInvalidJSON(t *testing.T) {
	srv, _ := testServer(t)

	rec := postWebhook(t, srv, []byte("{not json"), "Bearer "+testToken)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "valid JSON") {
		t.Errorf("body = %s, want mention of valid JSON", rec.Body.String())
	}
}

func TestServerBodyTooLarge(t *testing.T) {
	h, err := New(Config{Token: testToken, Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}
	srv := NewServer(ServerConfig{Listen: "127.0.0.1:0", MaxBodySize: 64}, h, slog.New(slog.DiscardHandler))

	body := []byte(`{"pad":"` + strings.Repeat("x", 128) + `"}`)
	rec := postWebhook(t, srv, body, "Bearer "+testToken)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestServerUnknownPath(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("POST", "/other", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()
	srv.setupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServerHealthz(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.setupRoutes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHTTPHandlerWithStdlibMux(t *testing.T) {
	h, err := New(Config{Token: testToken, Logger: slog.New(slog.DiscardHandler)})
	if err != nil {
		t.Fatalf("failed to build handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /hooks", HTTPHandler(h, 0))

	body, _ := json.Marshal(trackingUpdateBody())
	req := httptest.NewRequest("POST", "/hooks", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
