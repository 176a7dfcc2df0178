// Package service places orders for the shopper's cart through the product API.
package service

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/cart/domain"
	"storefront/internal/catalog/client"
	"storefront/internal/checkout/transport"
	"storefront/internal/events"
	"storefront/platform/apperr"
	"storefront/platform/logger"
)

const (
	msgCartEmpty       = "cart is empty"
	msgOrderRejected   = "the order could not be placed"
	msgOrderIDRequired = "order id is required"
)

// OrderSubmitter sends an order to the product API.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, req client.OrderRequest) (client.OrderResponse, error)
}

// CartAccess is the part of the cart the checkout needs.
type CartAccess interface {
	Lines(ctx context.Context, sessionID string) domain.Cart
	Clear(ctx context.Context, sessionID string) error
}

// Service handles checkout business logic.
type Service struct {
	orders OrderSubmitter
	cart   CartAccess
	bus    events.Bus
	log    *logger.Logger
}

// New creates a new checkout service.
func New(orders OrderSubmitter, cart CartAccess, bus events.Bus, log *logger.Logger) *Service {
	return &Service{orders: orders, cart: cart, bus: bus, log: log}
}

// PlaceOrder submits the cart of sessionID with the buyer's contact details.
// The order carries one product id per line item. The cart is cleared only
// once the product API confirmed the order.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req transport.PlaceOrderRequest) (transport.OrderResponse, error) {
	lines := s.cart.Lines(ctx, sessionID)
	if len(lines) == 0 {
		return transport.OrderResponse{}, apperr.BadRequest(msgCartEmpty)
	}

	productIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	result, err := s.orders.SubmitOrder(ctx, client.OrderRequest{
		Contact:  toContact(req.Contact),
		Products: productIDs,
	})
	if err != nil {
		var ferr *client.FetchError
		if errors.As(err, &ferr) {
			s.log.WithContext(ctx).FetchError(ferr.Method, ferr.URL, ferr.StatusCode, err)
		}
		return transport.OrderResponse{}, apperr.Upstream(msgOrderRejected, err).WithOp("checkout.PlaceOrder")
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		// The order exists upstream; the shopper still gets the confirmation.
		s.log.WithContext(ctx).Warn("cart not cleared after order", "order_id", result.OrderID, "error", err)
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.OrderPlaced{
			BaseEvent:  events.NewBaseEvent(),
			SessionID:  sessionID,
			OrderID:    result.OrderID,
			ProductIDs: productIDs,
			Email:      req.Contact.Email,
		})
	}

	return transport.OrderResponse{OrderID: result.OrderID}, nil
}

// Confirmation echoes the order id shown on the confirmation page.
func (s *Service) Confirmation(orderID string) (transport.OrderResponse, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return transport.OrderResponse{}, apperr.BadRequest(msgOrderIDRequired)
	}
	return transport.OrderResponse{OrderID: orderID}, nil
}

func toContact(c transport.ContactRequest) client.Contact {
	return client.Contact{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Address:   strings.TrimSpace(c.Address),
		City:      strings.TrimSpace(c.City),
		Email:     strings.TrimSpace(c.Email),
	}
}
