package scheduler

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SJ-Slasher/FMS/internal/logger"
	"github.com/SJ-Slasher/FMS/internal/metrics"
)

type MockCompleter struct{ mock.Mock }

func (m *MockCompleter) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockQueue struct{ mock.Mock }

func (m *MockQueue) QueueLength(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newScheduler(t *testing.T) *Scheduler {
	s, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })
	return s
}

func TestAddJob_Validation(t *testing.T) {
	s := newScheduler(t)

	_, err := s.AddJob("", "0 * * * *", func() {})
	assert.ErrorIs(t, err, ErrEmptyJobName)

	_, err = s.AddJob("job", " ", func() {})
	assert.ErrorIs(t, err, ErrEmptyCronExpr)

	_, err = s.AddIntervalJob("job", 0, func() {})
	assert.ErrorIs(t, err, ErrBadInterval)
}

func TestAddJob_BadCron(t *testing.T) {
	s := newScheduler(t)

	_, err := s.AddJob("job", "every hour please", func() {})
	assert.Error(t, err)
}

func TestRegisterJobs(t *testing.T) {
	s := newScheduler(t)

	require.NoError(t, RegisterBookingJobs(s, new(MockCompleter), "5 * * * *"))
	require.NoError(t, RegisterQueueGauge(s, new(MockQueue)))

	names := []string{}
	for _, j := range s.scheduler.Jobs() {
		names = append(names, j.Name())
	}
	assert.ElementsMatch(t, []string{CompleteBookingsJob, QueueGaugeJob}, names)
}

func TestIntervalJobRunsImmediately(t *testing.T) {
	s := newScheduler(t)

	ran := make(chan struct{}, 1)
	_, err := s.AddIntervalJob("tick", time.Hour, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("interval job did not run on start")
	}
}

func TestCompleteBookingsTask(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf, zerolog.InfoLevel)

	now := time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC)
	completer := new(MockCompleter)
	completer.On("CompletePastBookings", mock.Anything, now).Return(int64(3), nil)

	completeBookingsTask(completer, func() time.Time { return now })()

	completer.AssertExpectations(t)
	assert.Contains(t, buf.String(), "Completed past bookings")
	assert.Contains(t, buf.String(), `"count":3`)
}

func TestCompleteBookingsTask_Error(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf, zerolog.InfoLevel)

	completer := new(MockCompleter)
	completer.On("CompletePastBookings", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	completeBookingsTask(completer, time.Now)()

	assert.Contains(t, buf.String(), "Failed to complete past bookings")
}

func TestQueueGaugeTask(t *testing.T) {
	queue := new(MockQueue)
	queue.On("QueueLength", mock.Anything).Return(int64(7), nil).Once()

	queueGaugeTask(queue)()
	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.EmailQueueLength))

	queue.On("QueueLength", mock.Anything).Return(int64(0), assert.AnError).Once()
	queueGaugeTask(queue)()
	assert.Equal(t, float64(7), testutil.ToFloat64(metrics.EmailQueueLength))
}
