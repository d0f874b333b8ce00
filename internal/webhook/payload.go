package webhook

import "fmt"

// Notification type tags sent by the courier provider.
const (
	NotificationDeliveryStatus = "delivery_status"
	NotificationTrackingUpdate = "tracking_update"
)

// DeliveryStatus is the fixed set of consignment states the provider reports.
type DeliveryStatus string

const (
	StatusPending          DeliveryStatus = "pending"
	StatusDelivered        DeliveryStatus = "delivered"
	StatusPartialDelivered DeliveryStatus = "partial_delivered"
	StatusCancelled        DeliveryStatus = "cancelled"
	StatusUnknown          DeliveryStatus = "unknown"
)

func validDeliveryStatus(s string) bool {
	switch DeliveryStatus(s) {
	case StatusPending, StatusDelivered, StatusPartialDelivered, StatusCancelled, StatusUnknown:
		return true
	}
	return false
}

// Payload is the tagged union over the two notification shapes. It is
// sealed: the only implementations are DeliveryStatusPayload and
// TrackingUpdatePayload.
type Payload interface {
	NotificationType() string
	sealed()
}

// DeliveryStatusPayload is a consignment state change notification.
type DeliveryStatusPayload struct {
	ConsignmentID   int64          `json:"consignment_id"`
	Invoice         string         `json:"invoice"`
	CODAmount       float64        `json:"cod_amount"`
	Status          DeliveryStatus `json:"status"`
	DeliveryCharge  float64        `json:"delivery_charge"`
	TrackingMessage string         `json:"tracking_message"`
	UpdatedAt       string         `json:"updated_at"`
}

func (DeliveryStatusPayload) NotificationType() string { return NotificationDeliveryStatus }
func (DeliveryStatusPayload) sealed()                  {}

// TrackingUpdatePayload is a tracking progress notification.
type TrackingUpdatePayload struct {
	ConsignmentID   int64  `json:"consignment_id"`
	Invoice         string `json:"invoice"`
	TrackingMessage string `json:"tracking_message"`
	UpdatedAt       string `json:"updated_at"`
}

func (TrackingUpdatePayload) NotificationType() string { return NotificationTrackingUpdate }
func (TrackingUpdatePayload) sealed()                  {}

// ParsePayload validates an already-decoded JSON value against the known
// notification shapes. Validation is strict and fail-fast: base fields are
// checked before type-specific fields, fields in declaration order, no type
// coercion and no defaulting. The returned error is always an *Error with
// KindValidation.
func ParsePayload(v any) (Payload, error) {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return nil, validationError("", "payload must be an object")
	}

	notifType, err := stringField(obj, "notification_type")
	if err != nil {
		return nil, err
	}
	consignmentID, err := numberField(obj, "consignment_id")
	if err != nil {
		return nil, err
	}
	invoice, err := stringField(obj, "invoice")
	if err != nil {
		return nil, err
	}
	updatedAt, err := stringField(obj, "updated_at")
	if err != nil {
		return nil, err
	}

	switch notifType {
	case NotificationDeliveryStatus:
		codAmount, err := numberField(obj, "cod_amount")
		if err != nil {
			return nil, err
		}
		status, err := stringField(obj, "status")
		if err != nil {
			return nil, err
		}
		if !validDeliveryStatus(status) {
			return nil, validationError("status", fmt.Sprintf("status must be one of pending, delivered, partial_delivered, cancelled, unknown; got %q", status))
		}
		deliveryCharge, err := numberField(obj, "delivery_charge")
		if err != nil {
			return nil, err
		}
		trackingMessage, err := stringField(obj, "tracking_message")
		if err != nil {
			return nil, err
		}
		return DeliveryStatusPayload{
			ConsignmentID:   int64(consignmentID),
			Invoice:         invoice,
			CODAmount:       codAmount,
			Status:          DeliveryStatus(status),
			DeliveryCharge:  deliveryCharge,
			TrackingMessage: trackingMessage,
			UpdatedAt:       updatedAt,
		}, nil

	case NotificationTrackingUpdate:
		trackingMessage, err := stringField(obj, "tracking_message")
		if err != nil {
			return nil, err
		}
		return TrackingUpdatePayload{
			ConsignmentID:   int64(consignmentID),
			Invoice:         invoice,
			TrackingMessage: trackingMessage,
			UpdatedAt:       updatedAt,
		}, nil

	default:
		return nil, validationError("notification_type", fmt.Sprintf("unknown notification_type: %q", notifType))
	}
}

func stringField(obj map[string]any, field string) (string, error) {
	raw, ok := obj[field]
	if !ok {
		return "", validationError(field, field+" is required")
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", validationError(field, field+" must be a non-empty string")
	}
	return s, nil
}

func numberField(obj map[string]any, field string) (float64, error) {
	raw, ok := obj[field]
	if !ok {
		return 0, validationError(field, field+" is required")
	}
	n, ok := raw.(float64)
	if !ok {
		return 0, validationError(field, field+" must be a number")
	}
	return n, nil
}
