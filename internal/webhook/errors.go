package webhook

// ErrorKind classifies webhook pipeline failures.
type ErrorKind string

const (
	// KindAuthFormat means the Authorization header was missing or malformed.
	KindAuthFormat ErrorKind = "auth_format"
	// KindAuthMismatch means a well-formed bearer token did not match.
	KindAuthMismatch ErrorKind = "auth_mismatch"
	// KindValidation means the decoded payload failed structural validation.
	KindValidation ErrorKind = "validation"
	// KindCallback means a registered callback returned an error.
	KindCallback ErrorKind = "callback"
)

// Error is the single tagged error type for the webhook pipeline. Field is
// set for validation failures that can name the offending payload field.
type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func authFormatError(msg string) *Error {
	return &Error{Kind: KindAuthFormat, Message: msg}
}

func validationError(field, msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Field: field}
}

func callbackError(err error) *Error {
	msg := "webhook callback failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindCallback, Message: msg, Err: err}
}
