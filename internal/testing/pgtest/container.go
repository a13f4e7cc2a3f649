// Package pgtest runs a disposable PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	Image          = "postgres:15-alpine"
	startupTimeout = 30 * time.Second
)

var shared struct {
	sync.Mutex
	started   bool
	connStr   string
	err       error
	container *postgres.PostgresContainer
}

// Start launches a container and returns its connection string. Docker
// failures surface as errors, including the panics testcontainers raises
// when no daemon is reachable.
func Start(ctx context.Context) (c *postgres.PostgresContainer, connStr string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start postgres container: %v", r)
		}
	}()

	c, err = postgres.Run(ctx, Image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, "", fmt.Errorf("container connection string: %w", err)
	}
	return c, connStr, nil
}

// ConnString returns the connection string of the container shared by the
// current test binary, starting it on first use. The test is skipped in
// -short mode or when the container cannot be started.
func ConnString(t testing.TB) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	shared.Lock()
	defer shared.Unlock()
	if !shared.started {
		shared.started = true
		shared.container, shared.connStr, shared.err = Start(context.Background())
	}
	if shared.err != nil {
		t.Skipf("Skipping integration test: %v", shared.err)
	}
	return shared.connStr
}

// Terminate stops the shared container. Call it from TestMain after m.Run.
func Terminate() {
	shared.Lock()
	defer shared.Unlock()
	if shared.container != nil {
		if err := shared.container.Terminate(context.Background()); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
		shared.container = nil
	}
}
