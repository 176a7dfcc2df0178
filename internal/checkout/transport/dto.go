package transport

// ContactRequest is the order form. Every field is required.
type ContactRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100,personname"`
	LastName  string `json:"lastName" validate:"required,max=100,personname"`
	Address   string `json:"address" validate:"required,max=200,postaladdress"`
	City      string `json:"city" validate:"required,max=100,personname"`
	Email     string `json:"email" validate:"required,max=254,email"`
}

type PlaceOrderRequest struct {
	Contact ContactRequest `json:"contact"`
}

type ConfirmationRequest struct {
	OrderID string `form:"orderId" validate:"required,max=128"`
}

type OrderResponse struct {
	OrderID string `json:"orderId"`
}
