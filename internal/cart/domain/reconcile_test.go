package domain

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sofa = Product{ID: "107fb5b75607497b96722bda5b504926", Name: "Kanap Sinopé", Price: 1849, Colors: []string{"Blue", "White", "Black"}}
var lamp = Product{ID: "415b7cacb65d43b2b5c1ff70f3393ad1", Name: "Kanap Cyllène", Price: 4499, Colors: []string{"Black/Yellow", "Black/Red"}}

func TestReconcileInsertThenUpdateCollapses(t *testing.T) {
	action := Reconcile(Cart{}, sofa, "Blue", Absolute(2))
	if action.Kind != ActionInsert {
		t.Fatalf("expected insert, got %s", action.Kind)
	}
	if action.HasPosition() {
		t.Fatalf("expected no position for insert, got %d", action.Position)
	}
	want := LineItem{ProductID: sofa.ID, Color: "Blue", Quantity: 2}
	if diff := cmp.Diff(want, action.Item); diff != "" {
		t.Fatalf("unexpected insert item (-want +got):\n%s", diff)
	}

	cart := Apply(Cart{}, action)
	action = Reconcile(cart, sofa, "Blue", Delta(func(n int) int { return n + 3 }))
	if action.Kind != ActionUpdate {
		t.Fatalf("expected update, got %s", action.Kind)
	}
	if action.Position != 0 {
		t.Fatalf("expected position 0, got %d", action.Position)
	}

	cart = Apply(cart, action)
	if diff := cmp.Diff(Cart{{ProductID: sofa.ID, Color: "Blue", Quantity: 5}}, cart); diff != "" {
		t.Fatalf("unexpected cart (-want +got):\n%s", diff)
	}
}

func TestReconcileUpdateToNonPositiveRemoves(t *testing.T) {
	cart := Cart{
		{ProductID: lamp.ID, Color: "Black/Red", Quantity: 1},
		{ProductID: sofa.ID, Color: "Blue", Quantity: 2},
	}

	action := Reconcile(cart, sofa, "Blue", Delta(func(n int) int { return n - 5 }))
	if action.Kind != ActionRemove {
		t.Fatalf("expected remove, got %s", action.Kind)
	}
	if action.Position != 1 {
		t.Fatalf("expected position 1, got %d", action.Position)
	}

	next := Apply(cart, action)
	if diff := cmp.Diff(Cart{{ProductID: lamp.ID, Color: "Black/Red", Quantity: 1}}, next); diff != "" {
		t.Fatalf("unexpected cart (-want +got):\n%s", diff)
	}
	if len(cart) != 2 {
		t.Fatalf("expected input cart to stay untouched, got %d items", len(cart))
	}
}

func TestReconcileRemovalOfAbsentPairIsIdempotent(t *testing.T) {
	cart := Cart{{ProductID: sofa.ID, Color: "White", Quantity: 4}}

	intents := []Intent{Absolute(0), Absolute(-3), Delta(func(int) int { return -1 })}
	for _, intent := range intents {
		action := Reconcile(cart, sofa, "Blue", intent)
		if action.Kind != ActionRemove {
			t.Fatalf("expected remove, got %s", action.Kind)
		}
		if action.HasPosition() {
			t.Fatalf("expected no position, got %d", action.Position)
		}
		if diff := cmp.Diff(cart, Apply(cart, action)); diff != "" {
			t.Fatalf("expected unchanged cart (-want +got):\n%s", diff)
		}
	}
}

func TestReconcileAbsoluteOverridesCurrentQuantity(t *testing.T) {
	cart := Cart{{ProductID: sofa.ID, Color: "Blue", Quantity: 9}}
	action := Reconcile(cart, sofa, "Blue", Absolute(3))
	if action.Kind != ActionUpdate || action.Item.Quantity != 3 {
		t.Fatalf("expected update to 3, got %s to %d", action.Kind, action.Item.Quantity)
	}
}

func TestReconcileDistinguishesColors(t *testing.T) {
	cart := Cart{{ProductID: sofa.ID, Color: "Blue", Quantity: 1}}
	action := Reconcile(cart, sofa, "Black", Add(1))
	if action.Kind != ActionInsert {
		t.Fatalf("expected a new line for another color, got %s", action.Kind)
	}
	if got := len(Apply(cart, action)); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	cart := Cart{{ProductID: sofa.ID, Color: "Blue", Quantity: 1}}
	before := cart.Clone()

	_ = Apply(cart, Reconcile(cart, sofa, "Blue", Absolute(7)))
	_ = Apply(cart, Reconcile(cart, sofa, "Blue", Absolute(0)))

	if diff := cmp.Diff(before, cart); diff != "" {
		t.Fatalf("input cart changed (-before +after):\n%s", diff)
	}
}

func TestApplyIgnoresOutOfRangePositions(t *testing.T) {
	cart := Cart{{ProductID: sofa.ID, Color: "Blue", Quantity: 1}}
	for _, action := range []Action{
		{Kind: ActionUpdate, Item: LineItem{ProductID: "x", Color: "y", Quantity: 1}, Position: 5},
		{Kind: ActionRemove, Position: 3},
		{Kind: ActionKind(42), Position: 0},
	} {
		if diff := cmp.Diff(cart, Apply(cart, action)); diff != "" {
			t.Fatalf("expected unchanged cart for %+v (-want +got):\n%s", action, diff)
		}
	}
}

func TestReconcileKeepsPairsUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	products := []Product{sofa, lamp}
	cart := Cart{}

	for step := 0; step < 2000; step++ {
		product := products[rng.Intn(len(products))]
		color := product.Colors[rng.Intn(len(product.Colors))]

		var intent Intent
		if rng.Intn(2) == 0 {
			intent = Absolute(rng.Intn(7) - 2)
		} else {
			delta := rng.Intn(9) - 4
			intent = Add(delta)
		}

		cart = Apply(cart, Reconcile(cart, product, color, intent))

		seen := make(map[[2]string]bool, len(cart))
		for _, item := range cart {
			key := [2]string{item.ProductID, item.Color}
			if seen[key] {
				t.Fatalf("step %d: duplicate pair %v in %+v", step, key, cart)
			}
			seen[key] = true
			if item.Quantity < 1 {
				t.Fatalf("step %d: non-positive quantity in %+v", step, cart)
			}
		}
	}
}

func TestObserverDispatchesByKind(t *testing.T) {
	var got []string
	obs := Observer{
		OnInsert: func(Action) { got = append(got, "insert") },
		OnRemove: func(Action) { got = append(got, "remove") },
	}

	obs.Notify(Action{Kind: ActionInsert})
	obs.Notify(Action{Kind: ActionUpdate})
	obs.Notify(Action{Kind: ActionRemove})

	if diff := cmp.Diff([]string{"insert", "remove"}, got); diff != "" {
		t.Fatalf("unexpected dispatch (-want +got):\n%s", diff)
	}
}

func TestActionKindText(t *testing.T) {
	if ActionUpdate.String() != "update" {
		t.Fatalf("expected update, got %s", ActionUpdate)
	}
	text, _ := ActionRemove.MarshalText()
	if string(text) != "remove" {
		t.Fatalf("expected remove, got %s", text)
	}
}

func TestAddUpToCapsTheLine(t *testing.T) {
	cases := []struct {
		current, n, limit, want int
	}{
		{current: 0, n: 3, limit: 100, want: 3},
		{current: 98, n: 5, limit: 100, want: 100},
		{current: 100, n: 100, limit: 100, want: 100},
		{current: 120, n: 1, limit: 100, want: 120},
	}
	for _, tc := range cases {
		if got := Resolve(AddUpTo(tc.n, tc.limit), tc.current); got != tc.want {
			t.Fatalf("AddUpTo(%d, %d) on %d: expected %d, got %d", tc.n, tc.limit, tc.current, tc.want, got)
		}
	}
}
