package config

import "time"

// ConfigPathItems is the default item catalog file
const ConfigPathItems = "configs/items/items.json"

// Backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"

	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultServiceName    = "brandish-economy"
	DefaultVersion        = "dev"
	DefaultEnvironment    = "dev"
	DefaultDBMaxConns     = 20
	DefaultDBMinConns     = 2
	DefaultDBMaxConnIdle  = 30 * time.Minute
	DefaultLockTTL        = 10 * time.Second
	DefaultReaperSchedule = "@every 30s"
	DefaultWorkerCount    = 4
	DefaultSellConfirmTTL = 60 * time.Second

	DefaultWorkerQueueSize = 16
	DefaultDeadLetterPath  = "logs/event_deadletter.jsonl"
	DefaultLogDir          = "logs"
)
