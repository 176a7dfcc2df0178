// Package checkout provides the order placement module.
package checkout

import (
	"storefront/internal/checkout/handler"
	"storefront/internal/checkout/service"
	"storefront/internal/events"
	apphttp "storefront/internal/http"
	"storefront/platform/logger"
	"storefront/platform/validator"
)

// Module is the checkout module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the checkout module.
func NewModule(orders service.OrderSubmitter, cart service.CartAccess, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(orders, cart, bus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "checkout"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts checkout routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	orders := ctx.Shop.Group("/orders")
	if ctx.CheckoutLimiter != nil {
		orders.Use(ctx.CheckoutLimiter.RateLimit())
	}
	orders.POST("", m.handler.PlaceOrder)

	ctx.V1.GET("/confirmation", m.handler.Confirmation)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
