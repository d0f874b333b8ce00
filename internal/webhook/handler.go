package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/courierkit/steadfast/internal/events"
	"github.com/courierkit/steadfast/internal/log"
	"github.com/courierkit/steadfast/internal/metrics"
)

// Event channels published by the handler.
const (
	// EventReceived fires for every successfully parsed notification.
	EventReceived = "webhook.received"
	// EventDeliveryStatus fires after a delivery-status notification has
	// been fully dispatched, callback included.
	EventDeliveryStatus = "webhook.delivery_status"
	// EventTrackingUpdate is the tracking-update counterpart.
	EventTrackingUpdate = "webhook.tracking_update"
	// EventError fires for every rejected notification, carrying the error.
	EventError = "webhook.error"
)

// DeliveryStatusFunc handles a delivery-status notification.
type DeliveryStatusFunc func(ctx context.Context, p DeliveryStatusPayload) error

// TrackingUpdateFunc handles a tracking-update notification.
type TrackingUpdateFunc func(ctx context.Context, p TrackingUpdatePayload) error

// Config configures a Handler.
type Config struct {
	// Token is the shared bearer token expected on inbound notifications.
	Token string

	// SkipAuth disables bearer authentication entirely. Local/test use
	// only; it must be set explicitly for a tokenless Handler to build.
	SkipAuth bool

	// Bus receives the handler's events. A fresh bus is created when nil.
	Bus *events.Bus

	Logger *slog.Logger
}

// Handler authenticates, parses, and dispatches inbound webhook
// notifications. Callback registration is expected to happen during setup,
// before traffic; slots are not guarded for mid-flight reassignment.
type Handler struct {
	token    string
	skipAuth bool
	bus      *events.Bus
	logger   *slog.Logger

	onDeliveryStatus DeliveryStatusFunc
	onTrackingUpdate TrackingUpdateFunc
}

// New builds a Handler. It fails if no token is configured and SkipAuth is
// not explicitly set, so an unauthenticated receiver cannot happen by
// omission.
func New(cfg Config) (*Handler, error) {
	if cfg.Token == "" && !cfg.SkipAuth {
		return nil, fmt.Errorf("webhook: token is required unless SkipAuth is set")
	}
	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithComponent("webhook")
	}
	return &Handler{
		token:    cfg.Token,
		skipAuth: cfg.SkipAuth,
		bus:      bus,
		logger:   logger,
	}, nil
}

// Bus exposes the handler's event bus for subscribers.
func (h *Handler) Bus() *events.Bus { return h.bus }

// OnDeliveryStatus registers the delivery-status callback. Last write wins.
func (h *Handler) OnDeliveryStatus(fn DeliveryStatusFunc) { h.onDeliveryStatus = fn }

// OnTrackingUpdate registers the tracking-update callback. Last write wins.
func (h *Handler) OnTrackingUpdate(fn TrackingUpdateFunc) { h.onTrackingUpdate = fn }

// Handle processes one decoded notification body plus its Authorization
// header value. It always returns a Response; every failure path is
// converted to an error response and mirrored on the error channel.
func (h *Handler) Handle(ctx context.Context, body any, authHeader string) Response {
	if !h.skipAuth {
		token, err := ExtractBearerToken(authHeader)
		if err != nil {
			return h.reject(err)
		}
		if !VerifyToken(token, h.token) {
			return h.reject(&Error{Kind: KindAuthMismatch, Message: "Invalid authentication token"})
		}
	}

	payload, err := ParsePayload(body)
	if err != nil {
		return h.reject(err)
	}

	h.bus.Emit(EventReceived, payload)

	switch p := payload.(type) {
	case DeliveryStatusPayload:
		if err := h.runCallback(ctx, NotificationDeliveryStatus, func(ctx context.Context) error {
			if h.onDeliveryStatus == nil {
				return nil
			}
			return h.onDeliveryStatus(ctx, p)
		}); err != nil {
			return h.reject(callbackError(err))
		}
		h.bus.Emit(EventDeliveryStatus, p)
	case TrackingUpdatePayload:
		if err := h.runCallback(ctx, NotificationTrackingUpdate, func(ctx context.Context) error {
			if h.onTrackingUpdate == nil {
				return nil
			}
			return h.onTrackingUpdate(ctx, p)
		}); err != nil {
			return h.reject(callbackError(err))
		}
		h.bus.Emit(EventTrackingUpdate, p)
	}

	metrics.WebhooksReceived.WithLabelValues(payload.NotificationType()).Inc()
	h.logger.Info("webhook processed",
		"type", payload.NotificationType(),
	)
	return successResponse()
}

// runCallback invokes a registered callback and waits for it to finish.
// A panicking callback is treated like one that returned an error; nothing
// escapes Handle.
func (h *Handler) runCallback(ctx context.Context, notifType string, fn func(ctx context.Context) error) (err error) {
	start := time.Now()
	defer func() {
		metrics.CallbackDuration.WithLabelValues(notifType).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			err = fmt.Errorf("webhook callback panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// reject converts a pipeline error into the wire response and mirrors it on
// the error channel. Token contents are never logged.
func (h *Handler) reject(err error) Response {
	var werr *Error
	if !errors.As(err, &werr) {
		werr = &Error{Kind: KindValidation, Message: err.Error(), Err: err}
	}
	metrics.WebhookErrors.WithLabelValues(string(werr.Kind)).Inc()
	h.logger.Warn("webhook rejected",
		"kind", string(werr.Kind),
		"reason", werr.Message,
	)
	h.bus.Emit(EventError, werr)
	return errorResponse(werr.Message)
}
