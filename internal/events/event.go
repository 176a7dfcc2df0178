// Package events provides the storefront's domain event definitions.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"storefront/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Cart Domain Events
// =============================================================================

// CartLine identifies the line a cart event is about.
type CartLine struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartItemInserted is published after a new line was appended and persisted.
type CartItemInserted struct {
	BaseEvent
	CartLine
}

func (e CartItemInserted) EventName() string { return "cart.item.inserted" }

// CartItemUpdated is published after an existing line's quantity changed.
type CartItemUpdated struct {
	BaseEvent
	CartLine
	Position int `json:"position"`
}

func (e CartItemUpdated) EventName() string { return "cart.item.updated" }

// CartItemRemoved is published after a line was deleted from the cart.
type CartItemRemoved struct {
	BaseEvent
	CartLine
	Position int `json:"position"`
}

func (e CartItemRemoved) EventName() string { return "cart.item.removed" }

// =============================================================================
// Checkout Domain Events
// =============================================================================

// OrderPlaced is published once the product API confirmed an order.
type OrderPlaced struct {
	BaseEvent
	SessionID  string   `json:"sessionId"`
	OrderID    string   `json:"orderId"`
	ProductIDs []string `json:"productIds"`
	Email      string   `json:"email"`
}

func (e OrderPlaced) EventName() string { return "order.placed" }
