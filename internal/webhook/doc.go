// Package webhook processes inbound delivery notifications from the
// Steadfast courier API.
//
// The pipeline has three stages:
//
//  1. Authentication: the Authorization header must carry a bearer token
//     matching the configured shared secret. Extraction failures produce
//     descriptive format errors; token comparison uses crypto/subtle so a
//     mismatch reveals nothing through timing or message content.
//  2. Parsing: the decoded JSON body is validated strictly against the two
//     known notification shapes (delivery_status, tracking_update) and
//     turned into a tagged Payload. No coercion, no partial acceptance.
//  3. Dispatch: a generic received event is published, the per-type
//     callback (if registered) is invoked and awaited, then the per-type
//     event is published. Callback failures are caught at the Handle
//     boundary and mirrored on the error channel.
//
// Handle never panics or returns an error; every outcome is a Response
// that maps to HTTP 200 (success) or 400 (error) with a
// {"status": ..., "message": ...} JSON body. That mapping is part of the
// provider's contract and is owned by Response.HTTPStatus.
//
// # Security Model
//
//   - Bearer token verified with constant-time comparison
//   - Token mismatch always answers the same fixed message
//   - Body size limits enforced at the adapter
//   - Request logging excludes payloads and Authorization headers
//
// # Example Usage
//
//	h, err := webhook.New(webhook.Config{Token: os.Getenv("STEADFAST_WEBHOOK_TOKEN")})
//	if err != nil {
//		log.Fatal(err)
//	}
//	h.OnDeliveryStatus(func(ctx context.Context, p webhook.DeliveryStatusPayload) error {
//		return orders.MarkDelivered(ctx, p.ConsignmentID, p.Status)
//	})
//
//	srv := webhook.NewServer(webhook.ServerConfig{Listen: "127.0.0.1:8080"}, h, logger)
//	if err := srv.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
package webhook
