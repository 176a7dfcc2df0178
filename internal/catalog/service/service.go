package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"storefront/internal/cart/domain"
	"storefront/internal/catalog/client"
	"storefront/internal/catalog/transport"
	"storefront/platform/apperr"
	"storefront/platform/logger"
	"storefront/platform/sanitize"
)

const (
	productNotFoundMessage = "product not found"
	catalogUnavailable     = "product catalog is unavailable"

	// fetchConcurrency bounds parallel product lookups for one cart.
	fetchConcurrency = 8
)

// ProductSource is the product API as seen by the catalog service.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

// Service provides catalog reads on top of the product API.
type Service struct {
	source ProductSource
	locale string
	log    *logger.Logger
}

// New creates a new catalog service. locale drives priceDisplay.
func New(source ProductSource, locale string, log *logger.Logger) *Service {
	return &Service{source: source, locale: locale, log: log}
}

// ListProducts returns every product for the catalog page.
func (s *Service) ListProducts(ctx context.Context) (transport.ProductListResponse, error) {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return transport.ProductListResponse{}, s.fetchFailure(ctx, err)
	}

	items := make([]transport.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, s.toProductResponse(clean(p)))
	}
	return transport.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetProductByID returns one product for the product page.
func (s *Service) GetProductByID(ctx context.Context, id string) (transport.ProductResponse, error) {
	product, err := s.Product(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return s.toProductResponse(product), nil
}

// Product returns the domain product for id with its display text sanitized.
func (s *Service) Product(ctx context.Context, id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, apperr.BadRequest("product id is required")
	}
	product, err := s.source.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, s.fetchFailure(ctx, err)
	}
	return clean(product), nil
}

// ProductsByIDs fetches the given products in parallel and returns those that
// resolved. Lookups that fail are logged and left out, so a stale or
// unreachable product only removes its own cart lines.
func (s *Service) ProductsByIDs(ctx context.Context, ids []string) map[string]domain.Product {
	results := make([]*domain.Product, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			product, err := s.source.GetProduct(gctx, id)
			if err != nil {
				s.logFetch(ctx, err)
				return nil
			}
			product = clean(product)
			results[i] = &product
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]domain.Product, len(ids))
	for i, p := range results {
		if p != nil {
			out[ids[i]] = *p
		}
	}
	return out
}

func (s *Service) fetchFailure(ctx context.Context, err error) error {
	s.logFetch(ctx, err)

	var ferr *client.FetchError
	if errors.As(err, &ferr) && ferr.NotFound() {
		return apperr.NotFound(productNotFoundMessage)
	}
	return apperr.Upstream(catalogUnavailable, err)
}

func (s *Service) logFetch(ctx context.Context, err error) {
	var ferr *client.FetchError
	if errors.As(err, &ferr) {
		s.log.WithContext(ctx).FetchError(ferr.Method, ferr.URL, ferr.StatusCode, err)
		return
	}
	s.log.WithContext(ctx).Warn("catalog lookup failed", "error", err)
}

func (s *Service) toProductResponse(p domain.Product) transport.ProductResponse {
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	return transport.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: domain.FormatPrice(p.Price, s.locale),
		ImageURL:     p.ImageURL,
		AltText:      p.AltText,
		Description:  p.Description,
		Colors:       colors,
	}
}

// clean sanitizes the upstream text shoppers see, so every consumer of the
// catalog gets the same markup-free product.
func clean(p domain.Product) domain.Product {
	p.Name = sanitize.Text(p.Name)
	p.AltText = sanitize.Text(p.AltText)
	p.Description = sanitize.Text(p.Description)
	return p
}
