package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout/service"
	"storefront/internal/checkout/transport"
	"storefront/platform/httpkit"
	"storefront/platform/validator"
)

// Handler handles HTTP requests for checkout and confirmation.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgOrderIDRequired  = "order id is required"
)

// New creates a new checkout handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// PlaceOrder submits the cart with the contact form.
// POST /api/v1/orders
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req transport.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}
	sessionID, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}

	result, err := h.svc.PlaceOrder(c.Request.Context(), sessionID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Confirmation renders the confirmation page payload.
// GET /api/v1/confirmation?orderId=
func (h *Handler) Confirmation(c *gin.Context) {
	var req transport.ConfirmationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgOrderIDRequired, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.Confirmation(req.OrderID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
