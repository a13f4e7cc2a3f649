package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/osse101/BrandishEconomy/internal/logger"
)

// MessagePublisher is the part of *nats.Conn the forwarder needs
type MessagePublisher interface {
	Publish(subject string, data []byte) error
}

// NATSForwarder republishes bus events as JSON on NATS subjects
// economy.<type> for consumers outside the process.
type NATSForwarder struct {
	conn MessagePublisher
}

// ConnectNATS dials the NATS server at url
func ConnectNATS(url, clientName string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// NewNATSForwarder creates a forwarder publishing through conn
func NewNATSForwarder(conn MessagePublisher) *NATSForwarder {
	return &NATSForwarder{conn: conn}
}

// Attach subscribes the forwarder to every published event type on bus
func (f *NATSForwarder) Attach(bus Bus) {
	SubscribeAll(bus, f.Handle)
}

// Handle forwards one event. Errors surface to the bus so a
// ResilientPublisher in front of it can retry.
func (f *NATSForwarder) Handle(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
	}

	subject := Subject(e.Type)
	if err := f.conn.Publish(subject, data); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNATSForwardFailed, "subject", subject, "error", err)
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Subject maps an event type to its NATS subject
func Subject(t Type) string {
	s := string(t)
	if strings.HasPrefix(s, SubjectPrefix) {
		return s
	}
	return SubjectPrefix + s
}
