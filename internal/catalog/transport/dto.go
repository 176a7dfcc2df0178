package transport

// Products

type GetProductRequest struct {
	ID string `form:"id" validate:"required,max=128"`
}

type ProductResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	PriceDisplay string   `json:"priceDisplay"`
	ImageURL     string   `json:"imageUrl"`
	AltText      string   `json:"altTxt"`
	Description  string   `json:"description"`
	Colors       []string `json:"colors"`
}

type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
