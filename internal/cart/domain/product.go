// Package domain holds the cart model and the pure functions over it:
// reconciliation, intent validation and aggregation. Nothing here performs I/O.
package domain

// Product is a catalog entry as served by the product API. It is immutable
// and identified by ID.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	AltText     string   `json:"altTxt"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
}

// HasColor reports whether color is one of the product's colors.
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
