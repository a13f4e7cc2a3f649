package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/scheduler"
	"github.com/osse101/BrandishEconomy/internal/worker"
)

// StartBackgroundWork starts the worker pool and the cron scheduler that
// enqueues the auction reaper on AUCTION_REAPER_SCHEDULE.
func StartBackgroundWork(ctx context.Context, cfg *config.Config, settler worker.Settler) (*worker.Pool, *scheduler.Scheduler, error) {
	pool := worker.NewPool(ctx, cfg.WorkerCount, cfg.WorkerQueueSize)
	sched := scheduler.New(ctx, pool)

	if err := sched.Schedule(cfg.AuctionReaperSchedule, worker.NewAuctionReaper(settler, 0)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedScheduleReaper, err)
	}

	pool.Start()
	sched.Start()

	slog.Info(LogMsgBackgroundStarted,
		"workers", cfg.WorkerCount,
		"reaper_schedule", cfg.AuctionReaperSchedule)
	return pool, sched, nil
}
