package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nats-io/nats.go"

	"github.com/osse101/BrandishEconomy/internal/config"
	"github.com/osse101/BrandishEconomy/internal/event"
)

// InitializeEventSystem creates the in-process event bus and the resilient
// publisher the services publish through. It creates the dead-letter
// directory first so exhausted events always have somewhere to go.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// ConnectEventForwarding attaches a NATS forwarder to bus when NATS_URL is
// set. It returns a nil connection when forwarding is disabled.
func ConnectEventForwarding(cfg *config.Config, bus event.Bus) (*nats.Conn, error) {
	if cfg.NATSURL == "" {
		slog.Info(LogMsgNATSForwardingDisabled)
		return nil, nil
	}

	conn, err := event.ConnectNATS(cfg.NATSURL, cfg.ServiceName+NATSClientNameSuffix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectNATS, err)
	}

	event.NewNATSForwarder(conn).Attach(bus)
	slog.Info(LogMsgNATSForwardingEnabled, "url", conn.ConnectedUrlRedacted())
	return conn, nil
}
