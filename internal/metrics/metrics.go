package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chefbook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	bookingsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chefbook",
			Name:      "bookings_submitted_total",
			Help:      "Booking submissions accepted by the API.",
		},
	)

	linkTaskRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chefbook",
			Name:      "link_task_retries_total",
			Help:      "Retries of the user-booking link follow-up task.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsSubmitted, linkTaskRetries)
	})
}

// IncHTTP increments the request counter for an endpoint/status pair.
func IncHTTP(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

// IncBookingSubmitted counts an accepted booking submission.
func IncBookingSubmitted() {
	bookingsSubmitted.Inc()
}

// IncLinkTaskRetry counts one link-task retry.
func IncLinkTaskRetry() {
	linkTaskRetries.Inc()
}
