// Package events re-exports the platform event bus for convenience.
// This allows internal modules to import events from internal/events
// while the implementation lives in platform/events.
package events

import (
	"context"

	platformevents "storefront/platform/events"
	"storefront/platform/logger"
)

// InMemoryBus is a type alias to the platform InMemoryBus
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}

// SubscribeAuditLog attaches a subscriber that writes every storefront event
// to the structured log.
func SubscribeAuditLog(bus Bus, log *logger.Logger) {
	audit := HandlerFunc(func(ctx context.Context, event Event) error {
		reqLog := log.WithContext(ctx)
		switch e := event.(type) {
		case CartItemInserted:
			reqLog.CartAction("insert", e.ProductID, e.Color, e.Quantity)
		case CartItemUpdated:
			reqLog.CartAction("update", e.ProductID, e.Color, e.Quantity)
		case CartItemRemoved:
			reqLog.CartAction("remove", e.ProductID, e.Color, e.Quantity)
		case OrderPlaced:
			reqLog.OrderPlaced(e.OrderID, len(e.ProductIDs))
		}
		return nil
	})

	for _, name := range []string{
		CartItemInserted{}.EventName(),
		CartItemUpdated{}.EventName(),
		CartItemRemoved{}.EventName(),
		OrderPlaced{}.EventName(),
	} {
		bus.Subscribe(name, audit)
	}
}
