package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conflict detection stages.
const (
	StagePrecheck   = "precheck"
	StageConstraint = "constraint"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "futsal_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_bookings_created_total",
			Help: "Total number of admitted bookings by initial status",
		},
		[]string{"status"},
	)

	BookingConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_booking_conflicts_total",
			Help: "Booking requests rejected because the slot was taken",
		},
		[]string{"stage"},
	)

	BookingStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_booking_status_changes_total",
			Help: "Booking status transitions",
		},
		[]string{"from", "to"},
	)

	BookingsAutoCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "futsal_bookings_auto_completed_total",
			Help: "Bookings moved to completed by the scheduler",
		},
	)

	AvailabilityChecksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "futsal_availability_checks_total",
			Help: "Total number of availability projections served",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_payments_total",
			Help: "Total number of recorded payments",
		},
		[]string{"method", "status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "futsal_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "futsal_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated(status string) {
	BookingsCreatedTotal.WithLabelValues(status).Inc()
}

func RecordBookingConflict(stage string) {
	BookingConflictsTotal.WithLabelValues(stage).Inc()
}

func RecordStatusChange(from, to string) {
	BookingStatusChangesTotal.WithLabelValues(from, to).Inc()
}

func RecordAutoCompleted(n int64) {
	BookingsAutoCompletedTotal.Add(float64(n))
}

func RecordAvailabilityCheck() {
	AvailabilityChecksTotal.Inc()
}

func RecordPayment(method, status string) {
	PaymentsTotal.WithLabelValues(method, status).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
