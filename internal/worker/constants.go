package worker

import "time"

// Job names
const (
	JobNameAuctionReaper = "auction_reaper"
)

// DefaultReaperTimeout bounds a single reaper sweep
const DefaultReaperTimeout = 20 * time.Second

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Auction Reaper
// ============================================================================

// Log messages for the auction reaper
const (
	LogMsgReaperSettled = "Auction reaper settled auctions"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
