package scheduler

import (
	"context"
	"time"

	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/metrics"
)

const (
	CompleteBookingsJob = "complete-past-bookings"
	QueueGaugeJob       = "email-queue-gauge"

	jobTimeout         = 2 * time.Minute
	queueGaugeInterval = time.Minute
)

type BookingCompleter interface {
	CompletePastBookings(ctx context.Context, now time.Time) (int64, error)
}

type QueueMeter interface {
	QueueLength(ctx context.Context) (int64, error)
}

// RegisterBookingJobs schedules the move of confirmed bookings from past
// days to completed.
func RegisterBookingJobs(s *Scheduler, bookings BookingCompleter, cronExpr string) error {
	_, err := s.AddJob(CompleteBookingsJob, cronExpr, completeBookingsTask(bookings, time.Now))
	return err
}

// RegisterQueueGauge keeps the email queue gauge current.
func RegisterQueueGauge(s *Scheduler, queue QueueMeter) error {
	_, err := s.AddIntervalJob(QueueGaugeJob, queueGaugeInterval, queueGaugeTask(queue))
	return err
}

func completeBookingsTask(bookings BookingCompleter, now func() time.Time) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := bookings.CompletePastBookings(ctx, now())
		if err != nil {
			logger.Error("Failed to complete past bookings", "error", err)
			return
		}
		if n > 0 {
			logger.Info("Completed past bookings", "count", n)
		}
	}
}

func queueGaugeTask(queue QueueMeter) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		n, err := queue.QueueLength(ctx)
		if err != nil {
			logger.Warn("Failed to read email queue length", "error", err)
			return
		}
		metrics.EmailQueueLength.Set(float64(n))
	}
}
