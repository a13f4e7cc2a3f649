package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(AuctionCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	evt := NewAuctionEvent(AuctionCreated, domain.AuctionEventPayload{AuctionID: "a1", SellerID: "s1"})
	require.NoError(t, bus.Publish(context.Background(), evt))
	require.NoError(t, bus.Publish(context.Background(), NewAuctionEvent(AuctionExpired, domain.AuctionEventPayload{})))

	require.Len(t, got, 1, "only the subscribed type is delivered")
	assert.Equal(t, EventSchemaVersion, got[0].Version)
	payload, err := DecodePayload[domain.AuctionEventPayload](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "a1", payload.AuctionID)
	assert.False(t, payload.Timestamp.IsZero())
}

func TestMemoryBus_HandlerErrorsAreCollected(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(ItemSold, func(context.Context, Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(ItemSold, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewItemEvent(ItemSold, domain.ItemEventPayload{UserID: "u"}))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, calls, "a failing handler does not stop the others")
}

func TestSubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	SubscribeAll(bus, func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes {
		require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: typ}))
	}

	assert.Len(t, seen, len(AllTypes))
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"user_id": "u1", "item_id": "gem", "quantity": 2, "amount": 50}

	payload, err := DecodePayload[domain.ItemEventPayload](raw)

	require.NoError(t, err)
	assert.Equal(t, domain.ItemEventPayload{UserID: "u1", ItemID: "gem", Quantity: 2, Amount: 50}, payload)
}

func TestDecodePayload_PointerAndRaw(t *testing.T) {
	want := domain.AuctionEventPayload{AuctionID: "a9", Amount: 75}

	fromPtr, err := DecodePayload[domain.AuctionEventPayload](&want)
	require.NoError(t, err)
	assert.Equal(t, want, fromPtr)

	fromRaw, err := DecodePayload[domain.AuctionEventPayload](json.RawMessage(`{"auction_id":"a9","amount":75}`))
	require.NoError(t, err)
	assert.Equal(t, "a9", fromRaw.AuctionID)
	assert.Equal(t, int64(75), fromRaw.Amount)

	var nilPtr *domain.AuctionEventPayload
	_, err = DecodePayload[domain.AuctionEventPayload](nilPtr)
	assert.Error(t, err)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
