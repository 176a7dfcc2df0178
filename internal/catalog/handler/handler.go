package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog/service"
	"storefront/internal/catalog/transport"
	"storefront/platform/httpkit"
	"storefront/platform/validator"
)

// Handler handles HTTP requests for the product catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListProducts returns the whole catalog.
// GET /api/v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	result, err := h.svc.ListProducts(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetProduct resolves the product page from the id query parameter.
// GET /api/v1/product?id=
func (h *Handler) GetProduct(c *gin.Context) {
	var req transport.GetProductRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.svc.GetProductByID(c.Request.Context(), req.ID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetProductByID is the path-parameter form of GetProduct.
// GET /api/v1/products/:id
func (h *Handler) GetProductByID(c *gin.Context) {
	result, err := h.svc.GetProductByID(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
