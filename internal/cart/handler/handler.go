package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart/service"
	"storefront/internal/cart/transport"
	"storefront/platform/httpkit"
	"storefront/platform/validator"
)

// Handler handles HTTP requests for the shopper's cart.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new cart handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetCart returns the cart with resolved products and totals.
// GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := httpkit.MustGetSessionID(c)
	if !ok {
		return
	}
	httpkit.OK(c, h.svc.View(c.Request.Context(), sessionID))
}

// AddItem adds a validated selection to the cart.
// POST /api/v1/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req transport.AddItemRequest
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

	result, err := h.svc.AddItem(c.Request.Context(), sessionID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SetQuantity sets the absolute quantity of one line.
// PUT /api/v1/cart/items
func (h *Handler) SetQuantity(c *gin.Context) {
	var req transport.SetQuantityRequest
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

	result, err := h.svc.SetQuantity(c.Request.Context(), sessionID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// RemoveItem deletes one line.
// DELETE /api/v1/cart/items?productId=&color=
func (h *Handler) RemoveItem(c *gin.Context) {
	var req transport.RemoveItemRequest
	if err := c.ShouldBindQuery(&req); err != nil {
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

	result, err := h.svc.RemoveItem(c.Request.Context(), sessionID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
