package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "campsite_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campsite_booking",
			Name:      "bookings_created_total",
			Help:      "Bookings successfully confirmed.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campsite_booking",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because the dates were taken.",
		},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "campsite_booking",
			Name:      "bookings_cancelled_total",
			Help:      "Bookings transitioned to cancelled.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingConflicts, bookingsCancelled)
	})
}

func IncHTTP(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

func IncBookingCreated()   { bookingsCreated.Inc() }
func IncBookingConflict()  { bookingConflicts.Inc() }
func IncBookingCancelled() { bookingsCancelled.Inc() }
