package checkout

import (
	"testing"

	"gulffloat/fees"
	"gulffloat/models"
)

func float(v float64) *float64 { return &v }

func TestFeeConfigRequiresProtectionFee(t *testing.T) {
	req := &Request{TripProtection: true}
	if _, reason := FeeConfig(req); reason != "missing_trip_protection_fee" {
		t.Fatalf("reason = %q, want missing_trip_protection_fee", reason)
	}

	req.AdditionalFees = &AdditionalFees{TaxRate: 0.07}
	if _, reason := FeeConfig(req); reason != "missing_trip_protection_fee" {
		t.Fatalf("reason = %q, want missing_trip_protection_fee", reason)
	}

	req.AdditionalFees.TripProtectionFee = float(5.99)
	cfg, reason := FeeConfig(req)
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if cfg.TripProtectionFee != 5.99 || cfg.TaxRate != 0.07 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestFeeConfigNoProtection(t *testing.T) {
	req := &Request{
		AdditionalFees: &AdditionalFees{TaxRate: 0.07, CreditCardFeeRate: 0.03},
	}
	cfg, reason := FeeConfig(req)
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if cfg.TripProtection || cfg.TripProtectionFee != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.CreditCardFeeRate != 0.03 {
		t.Fatalf("card rate = %v", cfg.CreditCardFeeRate)
	}
}

func TestTotalMatchesTolerance(t *testing.T) {
	if !TotalMatches(72.73, 72.73) {
		t.Fatal("equal totals should match")
	}
	if !TotalMatches(72.72, 72.73) {
		t.Fatal("one-cent drift should match")
	}
	if TotalMatches(72.71, 72.73) {
		t.Fatal("two-cent drift should not match")
	}
	if TotalMatches(80.00, 72.73) {
		t.Fatal("gross mismatch should not match")
	}
}

func TestSnapshotItemsFreezesCatalogPrices(t *testing.T) {
	items, reason := SnapshotItems([]models.CartItem{
		{ServiceID: "crystal_kayak", Quantity: 2, BookingDate: "2026-09-01", BookingTime: "10:00:00"},
		{ServiceID: "luxury_cabana_3hr", Quantity: 1, BookingDate: "2026-09-01", BookingTime: "13:00:00"},
	})
	if reason != "" {
		t.Fatalf("unexpected reason %q", reason)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].UnitPrice != 60 || items[0].Subtotal != 120 {
		t.Fatalf("kayak line = %+v", items[0])
	}
	if items[0].ServiceName == "" || items[0].BookingDate != "2026-09-01" {
		t.Fatalf("kayak line missing snapshot fields: %+v", items[0])
	}
	if items[1].UnitPrice != 100 || items[1].Subtotal != 100 {
		t.Fatalf("cabana line = %+v", items[1])
	}
	if got := fees.Subtotal(items); got != 220 {
		t.Fatalf("priced subtotal = %v, want 220", got)
	}
}

func TestSnapshotItemsRejectsUnknownService(t *testing.T) {
	_, reason := SnapshotItems([]models.CartItem{
		{ServiceID: "crystal_kayak", Quantity: 1},
		{ServiceID: "submarine", Quantity: 1},
	})
	if reason != "invalid_service" {
		t.Fatalf("reason = %q, want invalid_service", reason)
	}
}
