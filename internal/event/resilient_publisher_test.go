package event

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// flakyBus fails while shouldFail reports true for the call number
type flakyBus struct {
	mu         sync.Mutex
	calls      []time.Time
	shouldFail func(call int) bool
	delay      time.Duration
}

func (b *flakyBus) Publish(_ context.Context, _ Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, time.Now())
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.shouldFail != nil && b.shouldFail(n) {
		return errors.New("broker unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) callTimes() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.calls...)
}

func testEvent() Event {
	return NewAuctionEvent(AuctionBidPlaced, domain.AuctionEventPayload{AuctionID: "a1", Amount: 150})
}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	assert.NoError(t, rp.Publish(context.Background(), testEvent()))

	assert.Len(t, bus.callTimes(), 1)
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetryThenSuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(call int) bool { return call == 1 }}
	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent())

	assert.Eventually(t, func() bool { return len(bus.callTimes()) == 2 }, time.Second, 10*time.Millisecond)
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_ExhaustedGoesToDeadLetter(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(int) bool { return true }}
	rp, err := NewResilientPublisher(bus, 2, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent())

	require.Eventually(t, func() bool {
		content, _ := os.ReadFile(path)
		return len(content) > 0
	}, 2*time.Second, 20*time.Millisecond)

	assert.Len(t, bus.callTimes(), 3, "initial attempt plus two retries")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, AuctionBidPlaced, entry.Event.Type)
	assert.Equal(t, "economy.auction.bid_placed", entry.Subject)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "broker unavailable", entry.LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
}

func TestResilientPublisher_QueueOverflow(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no worker drains the queue, so the second failure overflows it
	rp := &ResilientPublisher{
		bus:        &flakyBus{shouldFail: func(int) bool { return true }},
		retryQueue: make(chan retryEntry, 1),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.PublishWithRetry(context.Background(), testEvent())
	rp.PublishWithRetry(context.Background(), testEvent())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Len(t, rp.retryQueue, 1)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(call int) bool { return call < 3 }}
	base := 80 * time.Millisecond
	rp, err := NewResilientPublisher(bus, 5, base, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), testEvent())

	require.Eventually(t, func() bool { return len(bus.callTimes()) == 3 }, 2*time.Second, 10*time.Millisecond)
	calls := bus.callTimes()
	assert.InDelta(t, base.Milliseconds(), calls[1].Sub(calls[0]).Milliseconds(), 60)
	assert.InDelta(t, (2 * base).Milliseconds(), calls[2].Sub(calls[1]).Milliseconds(), 60)
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{shouldFail: func(call int) bool { return call == 1 }}
	rp, err := NewResilientPublisher(bus, 3, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), testEvent())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.GreaterOrEqual(t, len(bus.callTimes()), 1)
}

func TestReadDeadLetters_ReportsBadLine(t *testing.T) {
	input := `{"schema_version":"1.1","subject":"economy.item.sold","attempts":2}` + "\n\nnot json\n"

	entries, err := ReadDeadLetters(strings.NewReader(input))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Attempts)
}
