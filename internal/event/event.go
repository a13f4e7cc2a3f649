package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Auction event types
const (
	AuctionCreated   Type = domain.EventAuctionCreated
	AuctionBidPlaced Type = domain.EventAuctionBidPlaced
	AuctionOutbid    Type = domain.EventAuctionOutbid
	AuctionCompleted Type = domain.EventAuctionCompleted
	AuctionExpired   Type = domain.EventAuctionExpired
	AuctionCancelled Type = domain.EventAuctionCancelled
)

// Economy event types
const (
	ItemPurchased Type = domain.EventItemPurchased
	ItemSold      Type = domain.EventItemSold
	ItemUsed      Type = domain.EventItemUsed
)

// AllTypes lists every event type the services publish
var AllTypes = []Type{
	AuctionCreated,
	AuctionBidPlaced,
	AuctionOutbid,
	AuctionCompleted,
	AuctionExpired,
	AuctionCancelled,
	ItemPurchased,
	ItemSold,
	ItemUsed,
}

// NewAuctionEvent creates an auction event with a type-safe payload
func NewAuctionEvent(t Type, payload domain.AuctionEventPayload) Event {
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// NewItemEvent creates an economy item event with a type-safe payload
func NewItemEvent(t Type, payload domain.ItemEventPayload) Event {
	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers handler for every type in AllTypes
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}
