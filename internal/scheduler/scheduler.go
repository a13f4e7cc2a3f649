// Package scheduler enqueues worker jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	cron       *cron.Cron
}

// New creates a new scheduler. Nothing runs until Start.
func New(ctx context.Context, pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		cron:       cron.New(cron.WithLogger(cronLogger{ctx: ctx})),
	}
}

// Schedule registers job under a cron spec such as "@every 30s" or
// "*/5 * * * *". Each firing enqueues the job on the worker pool; a firing
// that finds the queue full is dropped.
func (s *Scheduler) Schedule(spec string, job worker.Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.workerPool.Enqueue(job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, job.Name(), err)
	}
	return nil
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing jobs and waits for any firing in progress
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes cron's own logging into slog
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.FromContext(l.ctx).Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.FromContext(l.ctx).Error(msg, append(keysAndValues, "error", err)...)
}
