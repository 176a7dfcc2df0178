package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/internal/cart/domain"
	"storefront/internal/catalog/client"
	"storefront/internal/checkout/transport"
	"storefront/internal/events"
	"storefront/platform/apperr"
	"storefront/platform/logger"
)

type stubOrders struct {
	got client.OrderRequest
	err error
}

func (s *stubOrders) SubmitOrder(_ context.Context, req client.OrderRequest) (client.OrderResponse, error) {
	s.got = req
	if s.err != nil {
		return client.OrderResponse{}, s.err
	}
	return client.OrderResponse{OrderID: "order-42"}, nil
}

type stubCart struct {
	lines   domain.Cart
	cleared bool
}

func (s *stubCart) Lines(context.Context, string) domain.Cart { return s.lines }

func (s *stubCart) Clear(context.Context, string) error {
	s.cleared = true
	s.lines = nil
	return nil
}

var contact = transport.ContactRequest{
	FirstName: "Ada",
	LastName:  "Lovelace",
	Address:   "12 rue de la Paix",
	City:      "Paris",
	Email:     "ada@example.com",
}

func TestPlaceOrderEmptyCartIsRejected(t *testing.T) {
	orders := &stubOrders{}
	svc := New(orders, &stubCart{}, nil, logger.Discard())

	_, err := svc.PlaceOrder(context.Background(), "s1", transport.PlaceOrderRequest{Contact: contact})
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	if orders.got.Products != nil {
		t.Fatal("expected no order to be submitted")
	}
}

func TestPlaceOrderSubmitsOneIDPerLineAndClearsCart(t *testing.T) {
	orders := &stubOrders{}
	cart := &stubCart{lines: domain.Cart{
		{ProductID: "p1", Color: "Blue", Quantity: 2},
		{ProductID: "p1", Color: "Red", Quantity: 1},
		{ProductID: "p2", Color: "Blue", Quantity: 5},
	}}
	bus := events.NewInMemoryBus(logger.Discard())
	placed := make(chan events.OrderPlaced, 1)
	bus.Subscribe(events.OrderPlaced{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		placed <- e.(events.OrderPlaced)
		return nil
	}))
	svc := New(orders, cart, bus, logger.Discard())

	result, err := svc.PlaceOrder(context.Background(), "s1", transport.PlaceOrderRequest{Contact: contact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bus.Wait()

	if result.OrderID != "order-42" {
		t.Fatalf("expected order-42, got %q", result.OrderID)
	}
	if len(orders.got.Products) != 3 {
		t.Fatalf("expected 3 product ids, got %v", orders.got.Products)
	}
	if orders.got.Contact.Email != contact.Email {
		t.Fatalf("expected contact to be forwarded, got %+v", orders.got.Contact)
	}
	if !cart.cleared {
		t.Fatal("expected cart to be cleared")
	}
	event := <-placed
	if event.OrderID != "order-42" || event.SessionID != "s1" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	orders := &stubOrders{err: &client.FetchError{Method: http.MethodPost, URL: "products/order", StatusCode: http.StatusBadRequest}}
	cart := &stubCart{lines: domain.Cart{{ProductID: "p1", Color: "Blue", Quantity: 1}}}
	svc := New(orders, cart, nil, logger.Discard())

	_, err := svc.PlaceOrder(context.Background(), "s1", transport.PlaceOrderRequest{Contact: contact})
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	var ferr *client.FetchError
	if !errors.As(err, &ferr) {
		t.Fatal("expected fetch error in chain")
	}
	if cart.cleared {
		t.Fatal("expected cart to be kept")
	}
}

func TestConfirmationRequiresOrderID(t *testing.T) {
	svc := New(&stubOrders{}, &stubCart{}, nil, logger.Discard())

	if _, err := svc.Confirmation("  "); !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
	result, err := svc.Confirmation("abc")
	if err != nil || result.OrderID != "abc" {
		t.Fatalf("expected abc, got %+v (%v)", result, err)
	}
}
