package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	APIKey         string   // API key for authentication
	TrustedProxies []string // peers whose X-Forwarded-For is honored

	// Logging
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	LogDir      string

	// Database
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMinConns     int
	DBMaxConnIdle  time.Duration
	StorageBackend string // "postgres" or "memory"

	// Locking
	LockBackend string // "memory" or "redis"
	RedisAddr   string
	LockTTL     time.Duration

	// Event forwarding, empty disables NATS
	NATSURL        string
	DeadLetterPath string

	// Catalog and background work
	ItemsConfigPath       string
	AuctionReaperSchedule string
	WorkerCount           int
	WorkerQueueSize       int
	SellConfirmTTL        time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:                getEnv("API_KEY", ""),
		LogLevel:              getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:             getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName:           getEnv("SERVICE_NAME", DefaultServiceName),
		Version:               getEnv("VERSION", DefaultVersion),
		Environment:           getEnv("ENVIRONMENT", DefaultEnvironment),
		LogDir:                getEnv("LOG_DIR", DefaultLogDir),
		TrustedProxies:        getEnvAsList("TRUSTED_PROXIES"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBName:                getEnv("DB_NAME", "brandisheconomy"),
		DBMaxConns:            getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMinConns:            getEnvAsInt("DB_MIN_CONNS", DefaultDBMinConns),
		DBMaxConnIdle:         getEnvAsDuration("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle),
		StorageBackend:        getEnv("STORAGE_BACKEND", StorageBackendPostgres),
		LockBackend:           getEnv("LOCK_BACKEND", LockBackendMemory),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		LockTTL:               getEnvAsDuration("LOCK_TTL", DefaultLockTTL),
		NATSURL:               getEnv("NATS_URL", ""),
		DeadLetterPath:        getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),
		ItemsConfigPath:       getEnv("ITEMS_CONFIG_PATH", ConfigPathItems),
		AuctionReaperSchedule: getEnv("AUCTION_REAPER_SCHEDULE", DefaultReaperSchedule),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:       getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		SellConfirmTTL:        getEnvAsDuration("SELL_CONFIRM_TTL", DefaultSellConfirmTTL),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s or %s", cfg.StorageBackend, StorageBackendPostgres, StorageBackendMemory)
	}

	switch cfg.LockBackend {
	case LockBackendMemory, LockBackendRedis:
	default:
		return nil, fmt.Errorf("invalid LOCK_BACKEND %q: must be %s or %s", cfg.LockBackend, LockBackendMemory, LockBackendRedis)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default on error
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a time.Duration environment variable, falling back to the default on error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UsesPostgres reports whether accounts and auctions live in Postgres.
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StorageBackendPostgres
}
