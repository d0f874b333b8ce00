package webhook

import "net/http"

// Response statuses on the wire.
const (
	ResponseStatusSuccess = "success"
	ResponseStatusError   = "error"
)

// SuccessMessage is the confirmation body sent for accepted notifications.
const SuccessMessage = "Webhook received successfully."

// Response is the uniform result of handling one inbound webhook. Exactly
// one of the two statuses, always with a message.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func successResponse() Response {
	return Response{Status: ResponseStatusSuccess, Message: SuccessMessage}
}

func errorResponse(msg string) Response {
	return Response{Status: ResponseStatusError, Message: msg}
}

// OK reports whether the webhook was accepted.
func (r Response) OK() bool { return r.Status == ResponseStatusSuccess }

// HTTPStatus maps the response onto the wire contract: 200 on success,
// 400 on error. This layer produces no other codes.
func (r Response) HTTPStatus() int {
	if r.OK() {
		return http.StatusOK
	}
	return http.StatusBadRequest
}
