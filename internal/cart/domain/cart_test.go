package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeRepairsStoredCart(t *testing.T) {
	stored := Cart{
		{ProductID: "a", Color: "Blue", Quantity: 1},
		{ProductID: "", Color: "Blue", Quantity: 1},
		{ProductID: "b", Color: "Red", Quantity: 0},
		{ProductID: " a ", Color: "Blue", Quantity: 2},
		{ProductID: "c", Color: " ", Quantity: 4},
		{ProductID: "b", Color: "Red", Quantity: 3},
	}

	want := Cart{
		{ProductID: "a", Color: "Blue", Quantity: 3},
		{ProductID: "b", Color: "Red", Quantity: 3},
	}
	if diff := cmp.Diff(want, Normalize(stored)); diff != "" {
		t.Fatalf("unexpected normalized cart (-want +got):\n%s", diff)
	}
}

func TestProductIDsAreDistinctInOrder(t *testing.T) {
	cart := Cart{
		{ProductID: "b", Color: "Red", Quantity: 1},
		{ProductID: "a", Color: "Blue", Quantity: 1},
		{ProductID: "b", Color: "Blue", Quantity: 1},
	}
	if diff := cmp.Diff([]string{"b", "a"}, cart.ProductIDs()); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
}
