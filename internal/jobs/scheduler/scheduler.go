package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"refspring/internal/observability"
)

// Job is a unit of background work run on a fixed interval
type Job interface {
	Name() string
	Run(ctx context.Context) error
	Schedule() time.Duration
}

// Scheduler runs jobs on fixed intervals inside the API process when Redis,
// and with it the asynq periodic scheduler, is unavailable. A job never
// overlaps itself: a tick that fires while the previous run is still going
// is dropped.
type Scheduler struct {
	jobs       []Job
	runTimeout time.Duration
	logger     *observability.Logger
}

// New creates a scheduler. Each run is bounded by runTimeout; zero means the
// run is only bounded by the job's interval.
func New(logger *observability.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// WithRunTimeout bounds every run of every job
func (s *Scheduler) WithRunTimeout(d time.Duration) *Scheduler {
	s.runTimeout = d
	return s
}

// Register adds a job. Jobs registered after Start are not picked up.
func (s *Scheduler) Register(job Job) {
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("registered scheduled job %s every %s", job.Name(), job.Schedule()))
}

// Start runs every job once immediately and then on its interval. It blocks
// until ctx is canceled and all in-flight runs have returned.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()

	s.logger.Info(ctx, "scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	busy := make(chan struct{}, 1)
	var running sync.WaitGroup
	defer running.Wait()

	fire := func() {
		select {
		case busy <- struct{}{}:
		default:
			s.logger.Warn(ctx, "previous run still in progress, skipping tick")
			return
		}
		running.Add(1)
		go func() {
			defer running.Done()
			defer func() { <-busy }()
			s.execute(ctx, job)
		}()
	}

	fire()

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fire()
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	timeout := s.runTimeout
	if timeout <= 0 {
		timeout = job.Schedule()
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(runCtx); err != nil {
		s.logger.Error(ctx, fmt.Sprintf("job failed after %s", time.Since(start)), err)
		return
	}
	s.logger.Info(ctx, fmt.Sprintf("job completed in %s", time.Since(start)))
}
