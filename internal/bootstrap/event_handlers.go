package bootstrap

import (
	"log/slog"

	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/metrics"
)

// RegisterEventHandlers sets up the in-process subscribers of the bus.
// NATS forwarding is attached separately by ConnectEventForwarding.
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
