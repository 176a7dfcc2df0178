package transport

// Requests

// AddItemRequest is the product page "add to cart" form. Quantity stays
// untyped so that form strings and JSON numbers both reach validation.
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required,max=128"`
	Color     string `json:"color"`
	Quantity  any    `json:"quantity"`
}

// SetQuantityRequest sets a line to an absolute quantity. Zero removes it.
type SetQuantityRequest struct {
	ProductID string `json:"productId" validate:"required,max=128"`
	Color     string `json:"color" validate:"required,max=64"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
}

type RemoveItemRequest struct {
	ProductID string `form:"productId" validate:"required,max=128"`
	Color     string `form:"color" validate:"required,max=64"`
}

// Responses

type CartLineResponse struct {
	ProductID        string  `json:"productId"`
	Name             string  `json:"name"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
	PriceDisplay     string  `json:"priceDisplay"`
	LineTotal        float64 `json:"lineTotal"`
	LineTotalDisplay string  `json:"lineTotalDisplay"`
	ImageURL         string  `json:"imageUrl"`
	AltText          string  `json:"altTxt"`
}

type CartResponse struct {
	Items             []CartLineResponse `json:"items"`
	TotalQuantity     int                `json:"totalQuantity"`
	TotalPrice        float64            `json:"totalPrice"`
	TotalPriceDisplay string             `json:"totalPriceDisplay"`
}

type LineItemResponse struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// CartMutationResponse reports what a write did and the cart that resulted.
type CartMutationResponse struct {
	Action string           `json:"action"`
	Item   LineItemResponse `json:"item"`
	Cart   CartResponse     `json:"cart"`
}
