package client

import "regexp"

// Field limits the provider enforces server-side; checking locally fails
// bad orders before any I/O.
const (
	maxRecipientNameLen    = 100
	maxRecipientAddressLen = 250
)

var (
	phonePattern   = regexp.MustCompile(`^01[0-9]{9}$`)
	invoicePattern = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
)

// ValidRecipientName reports whether name is non-empty and within limits.
func ValidRecipientName(name string) bool {
	return name != "" && len(name) <= maxRecipientNameLen
}

// ValidRecipientPhone reports whether phone is an 11-digit local mobile
// number (01xxxxxxxxx).
func ValidRecipientPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidRecipientAddress reports whether address is non-empty and within limits.
func ValidRecipientAddress(address string) bool {
	return address != "" && len(address) <= maxRecipientAddressLen
}

// ValidCODAmount reports whether amount is non-negative.
func ValidCODAmount(amount float64) bool {
	return amount >= 0
}

// ValidInvoice reports whether invoice is a non-empty alphanumeric/dash id.
func ValidInvoice(invoice string) bool {
	return invoicePattern.MatchString(invoice)
}

// validateOrder runs all field checks, returning the first failure.
func validateOrder(o OrderRequest) error {
	if !ValidInvoice(o.Invoice) {
		return &FieldError{Field: "invoice", Message: "must be a non-empty alphanumeric identifier"}
	}
	if !ValidRecipientName(o.RecipientName) {
		return &FieldError{Field: "recipient_name", Message: "must be non-empty and at most 100 characters"}
	}
	if !ValidRecipientPhone(o.RecipientPhone) {
		return &FieldError{Field: "recipient_phone", Message: "must be an 11-digit mobile number"}
	}
	if !ValidRecipientAddress(o.RecipientAddress) {
		return &FieldError{Field: "recipient_address", Message: "must be non-empty and at most 250 characters"}
	}
	if !ValidCODAmount(o.CODAmount) {
		return &FieldError{Field: "cod_amount", Message: "must not be negative"}
	}
	return nil
}
