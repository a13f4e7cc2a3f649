package concurrency

import "time"

// Lock key prefixes
const (
	KeyPrefixAccount = "account:"
	KeyPrefixAuction = "auction:"
	RedisKeyPrefix   = "economy:lock:"
)

// Redis lock timing
const (
	DefaultLockTTL      = 10 * time.Second
	DefaultLockWait     = 5 * time.Second
	DefaultRetryBackoff = 25 * time.Millisecond
	releaseTimeout      = 2 * time.Second
)

// Log messages
const (
	LogMsgReleaseFailed = "Failed to release redis lock"
)
