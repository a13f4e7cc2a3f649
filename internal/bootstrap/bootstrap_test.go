package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/concurrency"
	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/database/memory"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger_WritesSessionFileAndPrunes(t *testing.T) {
	// ARRANGE
	restoreDefaultLogger(t)
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, fmt.Sprintf("session_2026-01-01_00-00-%02d.log", i))
		require.NoError(t, os.WriteFile(name, nil, 0o644))
	}
	cfg := &config.Config{LogDir: dir, LogLevel: "info", LogFormat: "text", Environment: "test"}
	var stdout bytes.Buffer

	// ACT
	f, err := setupLogger(cfg, &stdout, time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	slog.Info("hello from test")

	// ASSERT
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	assert.Equal(t, "session_2026-10-19_12-00-00.log", entries[len(entries)-1].Name())
	assert.NoFileExists(t, filepath.Join(dir, "session_2026-01-01_00-00-00.log"))

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, stdout.String(), "hello from test")
}

func TestInitializeEventSystem(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := &config.Config{DeadLetterPath: filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")}

	bus, publisher, err := InitializeEventSystem(cfg)

	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	assert.DirExists(t, filepath.Dir(cfg.DeadLetterPath))
	RegisterEventHandlers(publisher)
	require.NoError(t, publisher.Shutdown(context.Background()))
}

func TestConnectEventForwarding_DisabledWithoutURL(t *testing.T) {
	conn, err := ConnectEventForwarding(&config.Config{}, nil)

	require.NoError(t, err)
	assert.Nil(t, conn)
}

func TestInitializeStorage_MemoryBackends(t *testing.T) {
	cfg := &config.Config{StorageBackend: config.StorageBackendMemory, LockBackend: config.LockBackendMemory}

	s, err := InitializeStorage(context.Background(), cfg)

	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, s.Store)
	assert.IsType(t, &concurrency.LockManager{}, s.Locker)
	require.NoError(t, s.Store.Ping(context.Background()))
	s.Close()
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	cfg := &config.Config{ItemsConfigPath: filepath.Join(t.TempDir(), "missing.json")}

	_, err := LoadCatalog(context.Background(), cfg)

	assert.ErrorContains(t, err, ErrMsgFailedLoadItems)
}

type countingSettler struct {
	calls atomic.Int32
}

func (c *countingSettler) SettleExpired(_ context.Context) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestStartBackgroundWork_RunsReaper(t *testing.T) {
	settler := &countingSettler{}
	cfg := &config.Config{WorkerCount: 1, WorkerQueueSize: 1, AuctionReaperSchedule: "@every 1s"}

	pool, sched, err := StartBackgroundWork(context.Background(), cfg, settler)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return settler.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)

	GracefulShutdown(context.Background(), ShutdownComponents{Scheduler: sched, WorkerPool: pool})
}

func TestStartBackgroundWork_InvalidSchedule(t *testing.T) {
	cfg := &config.Config{WorkerCount: 1, WorkerQueueSize: 1, AuctionReaperSchedule: "whenever"}

	_, _, err := StartBackgroundWork(context.Background(), cfg, &countingSettler{})

	assert.ErrorContains(t, err, ErrMsgFailedScheduleReaper)
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
