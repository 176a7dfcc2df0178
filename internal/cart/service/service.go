// Package service orchestrates cart reads and writes: it reconciles a
// shopper's intent against the stored cart, persists the result and reports
// what happened.
package service

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/cart/domain"
	"storefront/internal/cart/transport"
	"storefront/internal/events"
	"storefront/platform/apperr"
	"storefront/platform/logger"
)

const (
	msgSaveFailed       = "the cart could not be saved; nothing was changed"
	msgInvalidSelection = "invalid cart selection"
)

// Store is the cart persistence the service needs.
type Store interface {
	GetCart(ctx context.Context, sessionID string) domain.Cart
	SaveCart(ctx context.Context, sessionID string, cart domain.Cart) error
	ClearCart(ctx context.Context, sessionID string) error
}

// ProductCatalog resolves products from the product API.
type ProductCatalog interface {
	Product(ctx context.Context, id string) (domain.Product, error)
	ProductsByIDs(ctx context.Context, ids []string) map[string]domain.Product
}

// Service handles cart business logic.
type Service struct {
	store   Store
	catalog ProductCatalog
	bus     events.Bus
	bounds  domain.Bounds
	locale  string
	log     *logger.Logger
}

// New creates a new cart service.
func New(store Store, catalog ProductCatalog, bus events.Bus, bounds domain.Bounds, locale string, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		bus:     bus,
		bounds:  bounds.Normalized(),
		locale:  locale,
		log:     log,
	}
}

// Bounds returns the quantity bounds applied to shopper input.
func (s *Service) Bounds() domain.Bounds {
	return s.bounds
}

// SaveToCart reads the cart of sessionID once, reconciles intent for
// (product, color), writes the whole next cart and, only when the write
// succeeded, notifies observer and publishes the matching cart event.
// It returns false when the cart could not be written; the stored cart is
// then unchanged.
func (s *Service) SaveToCart(ctx context.Context, sessionID string, product domain.Product, color string, intent domain.Intent, observer domain.Observer) bool {
	_, err := s.saveToCart(ctx, sessionID, product, color, intent, observer)
	return err == nil
}

func (s *Service) saveToCart(ctx context.Context, sessionID string, product domain.Product, color string, intent domain.Intent, observer domain.Observer) (domain.Action, error) {
	current := s.store.GetCart(ctx, sessionID)

	action := domain.Reconcile(current, product, color, intent)
	next := domain.Apply(current, action)

	if err := s.store.SaveCart(ctx, sessionID, next); err != nil {
		return domain.Action{}, err
	}

	observer.Notify(action)
	s.publish(ctx, sessionID, action)
	return action, nil
}

// AddItem validates a product page selection and adds its quantity to the
// line for (productId, color). The line never grows past the upper bound:
// an add that would cross it fills the line up to the bound.
func (s *Service) AddItem(ctx context.Context, sessionID string, req transport.AddItemRequest) (transport.CartMutationResponse, error) {
	product, err := s.catalog.Product(ctx, req.ProductID)
	if err != nil {
		return transport.CartMutationResponse{}, err
	}

	selection, err := domain.ValidateIntent(req.Color, req.Quantity, product, s.bounds)
	if err != nil {
		return transport.CartMutationResponse{}, s.validationFailure(ctx, err)
	}

	return s.mutate(ctx, sessionID, product, selection.Color, domain.AddUpTo(selection.Quantity, s.bounds.Max))
}

// SetQuantity sets the line for (productId, color) to an absolute quantity.
// A quantity of zero removes the line.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, req transport.SetQuantityRequest) (transport.CartMutationResponse, error) {
	productID := strings.TrimSpace(req.ProductID)
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity <= 0 {
		return s.mutate(ctx, sessionID, domain.Product{ID: productID}, strings.TrimSpace(req.Color), domain.Absolute(0))
	}

	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		return transport.CartMutationResponse{}, err
	}
	selection, err := domain.ValidateIntent(req.Color, quantity, product, s.bounds)
	if err != nil {
		return transport.CartMutationResponse{}, s.validationFailure(ctx, err)
	}

	return s.mutate(ctx, sessionID, product, selection.Color, domain.Absolute(selection.Quantity))
}

// RemoveItem deletes the line for (productId, color). Removing an absent
// line succeeds and leaves the cart as it was.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, req transport.RemoveItemRequest) (transport.CartMutationResponse, error) {
	productID := strings.TrimSpace(req.ProductID)
	return s.mutate(ctx, sessionID, domain.Product{ID: productID}, strings.TrimSpace(req.Color), domain.Absolute(0))
}

// View resolves the cart of sessionID against the catalog and computes totals.
// Lines whose product can no longer be fetched are left out.
func (s *Service) View(ctx context.Context, sessionID string) transport.CartResponse {
	cart := s.store.GetCart(ctx, sessionID)
	if len(cart) == 0 {
		return s.toCartResponse(nil)
	}

	products := s.catalog.ProductsByIDs(ctx, cart.ProductIDs())
	return s.toCartResponse(domain.ResolveCartProducts(cart, products))
}

// Lines returns the stored cart of sessionID.
func (s *Service) Lines(ctx context.Context, sessionID string) domain.Cart {
	return s.store.GetCart(ctx, sessionID)
}

// Clear empties the cart of sessionID.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.ClearCart(ctx, sessionID); err != nil {
		return apperr.Unavailable(msgSaveFailed, err).WithOp("cart.Clear")
	}
	return nil
}

func (s *Service) mutate(ctx context.Context, sessionID string, product domain.Product, color string, intent domain.Intent) (transport.CartMutationResponse, error) {
	done, err := s.saveToCart(ctx, sessionID, product, color, intent, domain.Observer{})
	if err != nil {
		return transport.CartMutationResponse{}, apperr.Unavailable(msgSaveFailed, err).WithOp("cart.SaveToCart")
	}

	return transport.CartMutationResponse{
		Action: done.Kind.String(),
		Item: transport.LineItemResponse{
			ProductID: done.Item.ProductID,
			Color:     done.Item.Color,
			Quantity:  max(done.Item.Quantity, 0),
		},
		Cart: s.View(ctx, sessionID),
	}, nil
}

func (s *Service) validationFailure(ctx context.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.log.WithContext(ctx).Debug("cart selection rejected", "violations", verr.Count())
		return apperr.Validation(msgInvalidSelection).WithDetails(verr.Entries)
	}
	return err
}

func (s *Service) publish(ctx context.Context, sessionID string, action domain.Action) {
	if s.bus == nil {
		return
	}

	line := events.CartLine{
		SessionID: sessionID,
		ProductID: action.Item.ProductID,
		Color:     action.Item.Color,
		Quantity:  action.Item.Quantity,
	}

	switch action.Kind {
	case domain.ActionInsert:
		s.bus.Publish(ctx, events.CartItemInserted{BaseEvent: events.NewBaseEvent(), CartLine: line})
	case domain.ActionUpdate:
		s.bus.Publish(ctx, events.CartItemUpdated{BaseEvent: events.NewBaseEvent(), CartLine: line, Position: action.Position})
	case domain.ActionRemove:
		if !action.HasPosition() {
			return
		}
		s.bus.Publish(ctx, events.CartItemRemoved{BaseEvent: events.NewBaseEvent(), CartLine: line, Position: action.Position})
	}
}

func (s *Service) toCartResponse(lines []domain.CartProduct) transport.CartResponse {
	items := make([]transport.CartLineResponse, 0, len(lines))
	for _, cp := range lines {
		items = append(items, transport.CartLineResponse{
			ProductID:        cp.ProductID,
			Name:             cp.Product.Name,
			Color:            cp.Color,
			Quantity:         cp.Quantity,
			Price:            cp.Product.Price,
			PriceDisplay:     domain.FormatPrice(cp.Product.Price, s.locale),
			LineTotal:        cp.LineTotal(),
			LineTotalDisplay: domain.FormatPrice(cp.LineTotal(), s.locale),
			ImageURL:         cp.Product.ImageURL,
			AltText:          cp.Product.AltText,
		})
	}

	total := domain.PriceTotal(lines)
	return transport.CartResponse{
		Items:             items,
		TotalQuantity:     domain.QuantityTotal(lines),
		TotalPrice:        total,
		TotalPriceDisplay: domain.FormatPrice(total, s.locale),
	}
}
