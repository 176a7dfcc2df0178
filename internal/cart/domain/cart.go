package domain

import "strings"

// LineItem is one (product, color, quantity) entry of a cart.
// The pair (ProductID, Color) identifies it.
type LineItem struct {
	ProductID string `json:"id"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

// Cart is the ordered list of line items. Order follows insertion and is kept
// for display stability only.
type Cart []LineItem

// Find returns the position of the line item for (productID, color), or -1.
func (c Cart) Find(productID, color string) int {
	for i := range c {
		if c[i].ProductID == productID && c[i].Color == color {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// ProductIDs lists the distinct product IDs in cart order.
func (c Cart) ProductIDs() []string {
	seen := make(map[string]struct{}, len(c))
	ids := make([]string, 0, len(c))
	for _, item := range c {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// Normalize repairs a cart read from storage: entries with an empty id or
// color or a quantity below 1 are dropped, and repeated pairs are merged into
// the first occurrence by summing quantities.
func Normalize(c Cart) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		item.ProductID = strings.TrimSpace(item.ProductID)
		item.Color = strings.TrimSpace(item.Color)
		if item.ProductID == "" || item.Color == "" || item.Quantity < 1 {
			continue
		}
		if idx := out.Find(item.ProductID, item.Color); idx >= 0 {
			out[idx].Quantity += item.Quantity
			continue
		}
		out = append(out, item)
	}
	return out
}
