// Package catalog provides the product catalog bounded context module.
package catalog

import (
	"storefront/internal/catalog/client"
	"storefront/internal/catalog/handler"
	"storefront/internal/catalog/service"
	apphttp "storefront/internal/http"
	"storefront/platform/config"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	client  *client.Client
}

// NewModule creates and initializes the catalog module.
func NewModule(cfg *config.Config, val *validator.Validator, log *logger.Logger) *Module {
	api := client.New(client.Config{
		BaseURL: cfg.GetCatalogBaseURL(),
		Timeout: cfg.GetCatalogTimeout(),
	})

	svc := service.New(api, cfg.GetPriceLocale(), log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		client:  api,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Client returns the product API client, shared with checkout.
func (m *Module) Client() *client.Client {
	return m.client
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/products", m.handler.ListProducts)
	ctx.V1.GET("/products/:id", m.handler.GetProductByID)
	ctx.V1.GET("/product", m.handler.GetProduct)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
