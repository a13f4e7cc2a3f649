package event

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

type capturedMsg struct {
	subject string
	data    []byte
}

type fakeConn struct {
	mu   sync.Mutex
	msgs []capturedMsg
	err  error
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, capturedMsg{subject: subject, data: data})
	return nil
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "economy.auction.created", Subject(AuctionCreated))
	assert.Equal(t, "economy.item_sold", Subject(ItemSold))
}

func TestNATSForwarder_ForwardsBusEvents(t *testing.T) {
	// ARRANGE
	bus := NewMemoryBus()
	conn := &fakeConn{}
	NewNATSForwarder(conn).Attach(bus)

	// ACT
	err := bus.Publish(context.Background(), NewAuctionEvent(AuctionOutbid, domain.AuctionEventPayload{
		AuctionID:        "a1",
		PreviousBidderID: "bob",
		PreviousBid:      120,
	}))

	// ASSERT
	require.NoError(t, err)
	require.Len(t, conn.msgs, 1)
	assert.Equal(t, "economy.auction.outbid", conn.msgs[0].subject)

	var decoded struct {
		Type    Type                       `json:"type"`
		Payload domain.AuctionEventPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(conn.msgs[0].data, &decoded))
	assert.Equal(t, AuctionOutbid, decoded.Type)
	assert.Equal(t, "bob", decoded.Payload.PreviousBidderID)
	assert.Equal(t, int64(120), decoded.Payload.PreviousBid)
}

func TestNATSForwarder_PublishErrorSurfaces(t *testing.T) {
	bus := NewMemoryBus()
	NewNATSForwarder(&fakeConn{err: errors.New("nats: connection closed")}).Attach(bus)

	err := bus.Publish(context.Background(), NewItemEvent(ItemUsed, domain.ItemEventPayload{UserID: "u"}))

	assert.Error(t, err)
}

func TestNATSForwarder_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForListeningPort("4222/tcp"),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	defer func() { _ = container.Terminate(ctx) }()

	endpoint, err := container.PortEndpoint(ctx, "4222/tcp", "nats")
	require.NoError(t, err)

	conn, err := ConnectNATS(endpoint, "economy-test")
	require.NoError(t, err)
	defer conn.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := conn.ChanSubscribe("economy.auction.*", received)
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()
	require.NoError(t, conn.Flush())

	bus := NewMemoryBus()
	NewNATSForwarder(conn).Attach(bus)
	require.NoError(t, bus.Publish(ctx, NewAuctionEvent(AuctionCompleted, domain.AuctionEventPayload{AuctionID: "a9"})))

	select {
	case msg := <-received:
		assert.Equal(t, "economy.auction.completed", msg.Subject)
		assert.Contains(t, string(msg.Data), `"auction_id":"a9"`)
	case <-time.After(5 * time.Second):
		t.Fatal("no message received from NATS")
	}
}
