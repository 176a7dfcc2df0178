package domain

import "fmt"

// ActionKind tags the outcome of a reconciliation.
type ActionKind int

const (
	ActionInsert ActionKind = iota + 1
	ActionUpdate
	ActionRemove
)

// String returns the wire name of the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionInsert:
		return "insert"
	case ActionUpdate:
		return "update"
	case ActionRemove:
		return "remove"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// MarshalText renders the kind as insert, update or remove.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is the change a reconciliation asks the caller to apply.
// Position is the index of the existing line item, or -1 when there is none.
// For a remove, Item carries the requested pair and the resolved quantity.
type Action struct {
	Kind     ActionKind
	Item     LineItem
	Position int
}

// HasPosition reports whether the action targets an existing line item.
func (a Action) HasPosition() bool {
	return a.Position >= 0
}

// Reconcile decides how intent changes the line item for (product.ID, color).
// It neither mutates cart nor performs I/O.
//
//	existing | quantity | action
//	yes      | <= 0     | remove at position
//	yes      | > 0      | update at position
//	no       | <= 0     | remove without position (no-op)
//	no       | > 0      | insert
func Reconcile(cart Cart, product Product, color string, intent Intent) Action {
	position := cart.Find(product.ID, color)

	current := 0
	if position >= 0 {
		current = cart[position].Quantity
	}
	quantity := Resolve(intent, current)

	item := LineItem{ProductID: product.ID, Color: color, Quantity: quantity}

	switch {
	case quantity <= 0:
		return Action{Kind: ActionRemove, Item: item, Position: position}
	case position >= 0:
		return Action{Kind: ActionUpdate, Item: item, Position: position}
	default:
		return Action{Kind: ActionInsert, Item: item, Position: -1}
	}
}

// Apply returns the cart that results from action. The input is left untouched.
func Apply(cart Cart, action Action) Cart {
	next := cart.Clone()

	switch action.Kind {
	case ActionInsert:
		return append(next, action.Item)
	case ActionUpdate:
		if action.Position < 0 || action.Position >= len(next) {
			return next
		}
		next[action.Position] = action.Item
		return next
	case ActionRemove:
		if action.Position < 0 || action.Position >= len(next) {
			return next
		}
		return append(next[:action.Position], next[action.Position+1:]...)
	default:
		return next
	}
}

// Observer receives the action after it has been persisted.
// Nil callbacks are skipped.
type Observer struct {
	OnInsert func(Action)
	OnUpdate func(Action)
	OnRemove func(Action)
}

// Notify dispatches action to the callback for its kind.
func (o Observer) Notify(action Action) {
	var fn func(Action)
	switch action.Kind {
	case ActionInsert:
		fn = o.OnInsert
	case ActionUpdate:
		fn = o.OnUpdate
	case ActionRemove:
		fn = o.OnRemove
	}
	if fn != nil {
		fn(action)
	}
}
