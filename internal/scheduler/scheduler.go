package scheduler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/SJ-Slasher/FMS/internal/logger"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
	ErrBadInterval   = errors.New("interval must be positive")
)

// Scheduler wraps a gocron scheduler. Jobs never overlap with themselves.
type Scheduler struct {
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

func New() (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					logger.Error("Scheduler job panicked", "job_id", jobID.String(), "job_name", jobName, "panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: sched}, nil
}

func (s *Scheduler) Start() {
	logger.Info("Scheduler starting", "jobs", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

// Stop waits for running jobs to finish. Safe to call more than once.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		logger.Info("Scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob registers a cron-based job.
func (s *Scheduler) AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	return s.register(name, gocron.CronJob(cronExpr, false), task, "cron", cronExpr)
}

// AddIntervalJob registers a job that runs every interval, starting now.
func (s *Scheduler) AddIntervalJob(name string, every time.Duration, task func()) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if every <= 0 {
		return nil, ErrBadInterval
	}
	return s.register(name, gocron.DurationJob(every), task, "every", every.String(),
		gocron.WithStartAt(gocron.WithStartImmediately()))
}

func (s *Scheduler) register(name string, def gocron.JobDefinition, task func(), key, schedule string, opts ...gocron.JobOption) (gocron.Job, error) {
	jobLog := logger.WithFields(map[string]interface{}{"job_name": name, key: schedule})

	wrapped := func() {
		jobLog.Debug("Scheduler job started")
		task()
		jobLog.Debug("Scheduler job completed")
	}

	job, err := s.scheduler.NewJob(def, gocron.NewTask(wrapped), append(opts, gocron.WithName(name))...)
	if err != nil {
		jobLog.Error("Failed to register scheduler job", "error", err)
		return nil, err
	}
	jobLog.Info("Scheduler job registered")
	return job, nil
}
