package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// MinInterval is the shortest accepted refresh interval.
const MinInterval = 30 * time.Second

// Job is one refresh run.
type Job func(ctx context.Context) error

// Scheduler runs a Job periodically, starting immediately. Runs never overlap.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       Job
	interval  time.Duration
	timeout   time.Duration
}

// New creates a Scheduler. Intervals below MinInterval are raised to it. A
// positive timeout bounds each run.
func New(interval, timeout time.Duration, job Job) *Scheduler {
	if interval < MinInterval {
		interval = MinInterval
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		job:       job,
		interval:  interval,
		timeout:   timeout,
	}
}

// Interval returns the effective interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// SkipInitialRun makes the first run wait one interval instead of firing on
// Start. Call it before Start.
func (s *Scheduler) SkipInitialRun() {
	s.scheduler.WaitForScheduleAll()
}

// Start schedules the job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	_, err := s.scheduler.Every(s.interval).Do(s.run)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	slog.Info("scheduler started", "interval", s.interval)
	return nil
}

func (s *Scheduler) run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	if err := s.job(ctx); err != nil {
		slog.Warn("scheduled refresh failed", "err", err, "took", time.Since(start))
		return
	}
	slog.Debug("scheduled refresh completed", "took", time.Since(start))
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
