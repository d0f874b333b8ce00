package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the webhook receiver.
	Registry = prometheus.NewRegistry()

	// WebhooksReceived counts accepted webhook notifications by type.
	WebhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhooks_received_total", Help: "Accepted webhook notifications by type."},
		[]string{"type"},
	)
	// WebhookErrors counts rejected webhooks by failure kind.
	WebhookErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_errors_total", Help: "Rejected webhooks by failure kind."},
		[]string{"kind"},
	)
	// CallbackDuration tracks registered callback run time in seconds.
	CallbackDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "webhook_callback_duration_seconds", Help: "Registered callback duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"type"},
	)
	// HTTPDuration records inbound webhook request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "Inbound HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	// ClientRequests counts outbound courier API calls by operation and outcome.
	ClientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "client_requests_total", Help: "Outbound courier API calls by operation and outcome."},
		[]string{"op", "outcome"},
	)
	// ClientDuration records outbound courier API call durations in seconds.
	ClientDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "client_request_duration_seconds", Help: "Outbound courier API call duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"op"},
	)
)

var regOnce sync.Once

// Register registers all collectors on the dedicated registry.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(WebhooksReceived)
		Registry.MustRegister(WebhookErrors)
		Registry.MustRegister(CallbackDuration)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ClientRequests)
		Registry.MustRegister(ClientDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
