package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/database"
	"github.com/osse101/BrandishEconomy/internal/database/memory"
	"github.com/osse101/BrandishEconomy/internal/database/postgres"
	"github.com/osse101/BrandishEconomy/internal/repository"
)

// Storage holds the store and locker the services share, plus the
// connections behind them that must be closed on shutdown.
type Storage struct {
	Store  repository.Store
	Locker concurrency.Locker

	pool  *pgxpool.Pool
	redis *redis.Client
}

// InitializeStorage selects the store and locker backends from cfg. The
// Postgres backend connects, runs pending migrations and then wraps the pool.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{}

	if cfg.UsesPostgres() {
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns: cfg.DBMaxConns,
			MinConns: cfg.DBMinConns,
			MaxIdle:  cfg.DBMaxConnIdle,
			MaxLife:  DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		s.pool = pool

		if _, err := database.Migrate(ctx, pool); err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		s.Store = postgres.NewStore(pool)
	} else {
		s.Store = memory.NewStore()
	}
	slog.Info(LogMsgStorageInitialized, "backend", cfg.StorageBackend)

	if cfg.LockBackend == config.LockBackendRedis {
		client, err := concurrency.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		s.redis = client
		s.Locker = concurrency.NewRedisLocker(client, concurrency.WithLockTTL(cfg.LockTTL))
	} else {
		s.Locker = concurrency.NewLockManager()
	}
	slog.Info(LogMsgLockerInitialized, "backend", cfg.LockBackend)

	return s, nil
}

// Close releases the database pool and Redis client, if any
func (s *Storage) Close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "backend", config.LockBackendRedis, "error", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}
