package worker

import (
	"context"
	"time"

	"github.com/osse101/BrandishEconomy/internal/logger"
	"github.com/osse101/BrandishEconomy/internal/metrics"
)

// Settler closes auctions past their end time
type Settler interface {
	SettleExpired(ctx context.Context) (int, error)
}

// AuctionReaper is the job that settles due auctions
type AuctionReaper struct {
	settler Settler
	timeout time.Duration
}

// NewAuctionReaper creates the reaper job. Each run is bounded by timeout.
func NewAuctionReaper(settler Settler, timeout time.Duration) *AuctionReaper {
	if timeout <= 0 {
		timeout = DefaultReaperTimeout
	}
	return &AuctionReaper{settler: settler, timeout: timeout}
}

// Name identifies the job in logs
func (r *AuctionReaper) Name() string {
	return JobNameAuctionReaper
}

// Process runs one settlement sweep
func (r *AuctionReaper) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	settled, err := r.settler.SettleExpired(ctx)
	metrics.ReaperDuration.Observe(time.Since(start).Seconds())
	metrics.ReaperLastSettled.Set(float64(settled))

	if err != nil {
		metrics.ReaperRuns.WithLabelValues(metrics.OutcomeFailure).Inc()
		return err
	}
	metrics.ReaperRuns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	if settled > 0 {
		logger.FromContext(ctx).Info(LogMsgReaperSettled, "settled", settled)
	}
	return nil
}
