package cart

import (
	"testing"
	"time"

	"gulffloat/models"
)

func threeItems() []models.CartItem {
	return []models.CartItem{
		{ServiceID: "crystal_kayak", Quantity: 1},
		{ServiceID: "canoe", Quantity: 2},
		{ServiceID: "paddle_board", Quantity: 1},
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	got, ok := RemoveAt(threeItems(), 1)
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ServiceID != "crystal_kayak" || got[1].ServiceID != "paddle_board" {
		t.Fatalf("order broken: %+v", got)
	}
}

func TestRemoveAtBounds(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		if _, ok := RemoveAt(threeItems(), idx); ok {
			t.Fatalf("index %d should be rejected", idx)
		}
	}
	if _, ok := RemoveAt(nil, 0); ok {
		t.Fatal("removal from empty cart should fail")
	}
}

func TestRemoveAtDoesNotMutateInput(t *testing.T) {
	items := threeItems()
	RemoveAt(items, 0)
	if len(items) != 3 || items[0].ServiceID != "crystal_kayak" {
		t.Fatalf("input mutated: %+v", items)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now().UTC()
	c := &models.Cart{ExpiresAt: now}

	if IsExpired(c, now) {
		t.Fatal("cart at exact expiry should still be live")
	}
	if IsExpired(c, now.Add(-time.Second)) {
		t.Fatal("cart before expiry should be live")
	}
	if !IsExpired(c, now.Add(time.Second)) {
		t.Fatal("cart past expiry should be expired")
	}
}

func TestSubtotalPricesAgainstCatalog(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "crystal_kayak", Quantity: 2},
		{ServiceID: "luxury_cabana_hourly", Quantity: 1},
	}
	if got := Subtotal(items); got != 170 {
		t.Fatalf("Subtotal = %v, want 170", got)
	}
}

func TestSubtotalSkipsUnknownService(t *testing.T) {
	items := []models.CartItem{
		{ServiceID: "jet_ski", Quantity: 5},
		{ServiceID: "canoe", Quantity: 1},
	}
	if got := Subtotal(items); got != 75 {
		t.Fatalf("Subtotal = %v, want 75", got)
	}
}
