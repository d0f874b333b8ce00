package client

import (
	"errors"
	"fmt"
)

// ErrorKind classifies outbound call failures.
type ErrorKind string

const (
	// KindTimeout means the per-call deadline expired.
	KindTimeout ErrorKind = "timeout"
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork ErrorKind = "network"
	// KindHTTPStatus means the provider answered outside 2xx.
	KindHTTPStatus ErrorKind = "http_status"
	// KindDecode means a 2xx response body could not be decoded.
	KindDecode ErrorKind = "decode"
)

// APIError is the one error shape for all transport-level failures.
type APIError struct {
	Kind       ErrorKind
	StatusCode int // set for KindHTTPStatus
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("steadfast: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return "steadfast: " + e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// IsTimeout reports whether err is a per-call timeout.
func IsTimeout(err error) bool { return hasKind(err, KindTimeout) }

// IsNetwork reports whether err is a transport-level failure.
func IsNetwork(err error) bool { return hasKind(err, KindNetwork) }

func hasKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// FieldError reports an order field that failed pre-submission validation.
// It is returned before any I/O happens.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("steadfast: invalid %s: %s", e.Field, e.Message)
}
