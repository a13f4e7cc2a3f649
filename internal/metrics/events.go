package metrics

import (
	"context"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/event"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the services publish
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemPurchased, event.ItemSold, event.ItemUsed:
		p, err := event.DecodePayload[domain.ItemEventPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		recordItem(evt.Type, p)

	case event.AuctionCreated, event.AuctionBidPlaced, event.AuctionCompleted, event.AuctionExpired, event.AuctionCancelled:
		p, err := event.DecodePayload[domain.AuctionEventPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		recordAuction(evt.Type, p)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordItem(t event.Type, p domain.ItemEventPayload) {
	qty := float64(p.Quantity)
	switch t {
	case event.ItemPurchased:
		ItemsBought.WithLabelValues(p.ItemID).Add(qty)
		MoneySpent.Add(float64(p.Amount))
	case event.ItemSold:
		ItemsSold.WithLabelValues(p.ItemID).Add(qty)
		MoneyEarned.Add(float64(p.Amount))
	case event.ItemUsed:
		ItemsUsed.WithLabelValues(p.ItemID).Add(qty)
	}
}

func recordAuction(t event.Type, p domain.AuctionEventPayload) {
	switch t {
	case event.AuctionCreated:
		AuctionsCreated.Inc()
	case event.AuctionBidPlaced:
		BidsPlaced.Inc()
	case event.AuctionCompleted:
		AuctionsSettled.WithLabelValues(string(domain.AuctionCompleted)).Inc()
		AuctionVolume.Add(float64(p.Amount))
	case event.AuctionExpired:
		AuctionsSettled.WithLabelValues(string(domain.AuctionExpired)).Inc()
	case event.AuctionCancelled:
		AuctionsSettled.WithLabelValues(string(domain.AuctionCancelled)).Inc()
	}
}
