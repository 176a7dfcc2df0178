package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rule names an intent validation rule.
type Rule string

const (
	RuleColorRequired   Rule = "color_required"
	RuleColorMembership Rule = "color_membership"
	RuleQuantityInteger Rule = "quantity_integer"
	RuleQuantityRange   Rule = "quantity_range"
)

// Bounds limits the quantity a shopper may request in one go.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultBounds is {1, 1}.
var DefaultBounds = Bounds{Min: 1, Max: 1}

// Normalized raises Min to at least 1 and Max to at least Min.
func (b Bounds) Normalized() Bounds {
	if b.Min < 1 {
		b.Min = DefaultBounds.Min
	}
	if b.Max < 1 {
		b.Max = DefaultBounds.Max
	}
	if b.Max < b.Min {
		b.Max = b.Min
	}
	return b
}

// EntryError is one violated rule.
type EntryError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e EntryError) Error() string {
	return e.Message
}

// ValidationError aggregates every rule violated by one request.
type ValidationError struct {
	Entries []EntryError `json:"entries"`
}

// Count returns the number of violations.
func (e *ValidationError) Count() int {
	return len(e.Entries)
}

// Has reports whether rule was violated.
func (e *ValidationError) Has(rule Rule) bool {
	for _, entry := range e.Entries {
		if entry.Rule == rule {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Entries))
	for i, entry := range e.Entries {
		msgs[i] = entry.Message
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Entries), strings.Join(msgs, "; "))
}

// Selection is a validated (color, quantity) pair ready for SaveToCart.
type Selection struct {
	Color    string
	Quantity int
}

// ValidateIntent checks a shopper's color and quantity choice against the
// product and bounds. Every violation is collected; none short-circuits.
// rawQuantity may be a string (form input), a json.Number, or any Go number.
func ValidateIntent(selectedColor string, rawQuantity any, product Product, bounds Bounds) (Selection, error) {
	bounds = bounds.Normalized()
	color := strings.TrimSpace(selectedColor)

	var entries []EntryError
	if color == "" {
		entries = append(entries, EntryError{Rule: RuleColorRequired, Message: "please select a color"})
	} else if !product.HasColor(color) {
		entries = append(entries, EntryError{
			Rule:    RuleColorMembership,
			Message: fmt.Sprintf("color %q is not available for %s", color, product.Name),
		})
	}

	value, numeric := toFloat(rawQuantity)
	if !numeric || value != math.Trunc(value) {
		entries = append(entries, EntryError{Rule: RuleQuantityInteger, Message: "quantity must be a whole number"})
	}
	if numeric && (value < float64(bounds.Min) || value > float64(bounds.Max)) {
		entries = append(entries, EntryError{
			Rule:    RuleQuantityRange,
			Message: fmt.Sprintf("quantity must be between %d and %d", bounds.Min, bounds.Max),
		})
	}

	if len(entries) > 0 {
		return Selection{}, &ValidationError{Entries: entries}
	}
	return Selection{Color: color, Quantity: int(value)}, nil
}

func toFloat(raw any) (float64, bool) {
	var value float64
	switch v := raw.(type) {
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case float32:
		value = float64(v)
	case float64:
		value = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		value = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		value = f
	default:
		return 0, false
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
