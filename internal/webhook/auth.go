package webhook

import (
	"crypto/subtle"
	"strings"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken pulls the token out of a raw Authorization header
// value. Format failures return an *Error with KindAuthFormat; the message
// is safe to surface to the caller.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", authFormatError("missing Authorization header")
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", authFormatError("invalid Authorization header format")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", authFormatError("missing bearer token")
	}
	return token, nil
}

// VerifyToken reports whether received matches expected. It never returns
// an error and reveals nothing about where a mismatch occurs: empty inputs
// and length mismatches fail fast (length is not secret), and equal-length
// tokens are compared byte-wise in constant time.
func VerifyToken(received, expected string) bool {
	if received == "" || expected == "" {
		return false
	}
	if len(received) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(received), []byte(expected)) == 1
}
