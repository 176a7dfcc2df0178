package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CartProduct joins a line item with its catalog product. It is built for
// display and totals only and never persisted.
type CartProduct struct {
	LineItem
	Product Product
}

// LineTotal is price * quantity.
func (cp CartProduct) LineTotal() float64 {
	return cp.Product.Price * float64(cp.Quantity)
}

// ResolveCartProducts joins cart with catalog, keeping cart order. Line items
// whose product is missing from catalog are dropped.
func ResolveCartProducts(cart Cart, catalog map[string]Product) []CartProduct {
	out := make([]CartProduct, 0, len(cart))
	for _, item := range cart {
		product, ok := catalog[item.ProductID]
		if !ok {
			continue
		}
		out = append(out, CartProduct{LineItem: item, Product: product})
	}
	return out
}

// QuantityTotal sums the quantities of cartProducts.
func QuantityTotal(cartProducts []CartProduct) int {
	total := 0
	for _, cp := range cartProducts {
		total += cp.Quantity
	}
	return total
}

// PriceTotal sums price * quantity over cartProducts. The value is not rounded.
func PriceTotal(cartProducts []CartProduct) float64 {
	var total float64
	for _, cp := range cartProducts {
		total += cp.LineTotal()
	}
	return total
}

// FormatPrice renders value with two decimals using the separators of locale
// (a BCP 47 tag such as "fr-FR"). Unknown tags fall back to English.
func FormatPrice(value float64, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%.2f", value)
}
