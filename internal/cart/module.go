// Package cart provides the cart bounded context module.
package cart

import (
	"storefront/internal/cart/domain"
	"storefront/internal/cart/handler"
	"storefront/internal/cart/repository"
	"storefront/internal/cart/service"
	"storefront/internal/events"
	apphttp "storefront/internal/http"
	"storefront/platform/config"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

// Module is the cart bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    *repository.Repository
}

// NewModule creates and initializes the cart module on top of store.
func NewModule(store repository.BlobStore, catalog service.ProductCatalog, bus events.Bus, val *validator.Validator, cfg config.CartConfig, log *logger.Logger) *Module {
	repo := repository.New(store, cfg.GetCartKey(), log)
	bounds := domain.Bounds{Min: cfg.GetCartQuantityMin(), Max: cfg.GetCartQuantityMax()}

	svc := service.New(repo, catalog, bus, bounds, cfg.GetPriceLocale(), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "cart"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the cart repository, used for health checks.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// RegisterRoutes mounts cart routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Shop.GET("/cart", m.handler.GetCart)
	ctx.Shop.POST("/cart/items", m.handler.AddItem)
	ctx.Shop.PUT("/cart/items", m.handler.SetQuantity)
	ctx.Shop.DELETE("/cart/items", m.handler.RemoveItem)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
