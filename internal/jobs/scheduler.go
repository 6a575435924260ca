package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is a single background job invocation
type Job interface {
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron schedules. Every invocation is
// isolated: panics are recovered and errors logged, so one failed run can
// never cancel future runs or take down the process.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates an empty scheduler
func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}
}

// Register adds a job under the given cron expression
func (s *Scheduler) Register(name, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("job panicked",
					slog.String("job", name),
					slog.Any("panic", rec),
				)
			}
		}()

		s.logger.Info("job started", slog.String("job", name))

		if err := job.Run(context.Background()); err != nil {
			s.logger.Error("job failed",
				slog.String("job", name),
				slog.String("error", err.Error()),
			)
			return
		}

		s.logger.Info("job finished", slog.String("job", name))
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", name, err)
	}

	s.logger.Info("job registered",
		slog.String("job", name),
		slog.String("schedule", schedule),
	)

	return nil
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
