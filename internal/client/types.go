package client

// OrderRequest is a single delivery order submission.
type OrderRequest struct {
	Invoice          string  `json:"invoice"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	CODAmount        float64 `json:"cod_amount"`
	Note             string  `json:"note,omitempty"`
}

// Consignment is the provider's record of an accepted order.
type Consignment struct {
	ConsignmentID    int64   `json:"consignment_id"`
	Invoice          string  `json:"invoice"`
	TrackingCode     string  `json:"tracking_code"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	CODAmount        float64 `json:"cod_amount"`
	Status           string  `json:"status"`
	Note             string  `json:"note"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// BulkOrderResult is the per-item outcome of a bulk submission. Items are
// accepted or rejected individually.
type BulkOrderResult struct {
	Invoice       string `json:"invoice"`
	ConsignmentID int64  `json:"consignment_id"`
	TrackingCode  string `json:"tracking_code"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// Balance is the account's current credit.
type Balance struct {
	CurrentBalance float64 `json:"current_balance"`
}

// ReturnRequestInput creates a return request for a consignment.
type ReturnRequestInput struct {
	ConsignmentID int64  `json:"consignment_id"`
	Reason        string `json:"reason,omitempty"`
}

// ReturnRequest is the provider's record of a return request.
type ReturnRequest struct {
	ID            int64  `json:"id"`
	ConsignmentID int64  `json:"consignment_id"`
	Invoice       string `json:"invoice"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Payment is one settlement from the provider.
type Payment struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference"`
	PaidAt      string  `json:"paid_at"`
	Description string  `json:"description"`
}

// PoliceStation is a reference-data entry for coverage areas.
type PoliceStation struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
}
