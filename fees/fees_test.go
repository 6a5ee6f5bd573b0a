package fees

import (
	"math"
	"testing"

	"gulffloat/models"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func kayakCart() []models.LineItem {
	return []models.LineItem{
		{ServiceID: "crystal_kayak", ServiceName: "Crystal Kayak", UnitPrice: 60, Quantity: 1, Subtotal: 60},
	}
}

func TestComputeCardPayment(t *testing.T) {
	cfg := Config{
		TripProtection:    true,
		TripProtectionFee: 5.99,
		TaxRate:           0.07,
		CreditCardFeeRate: 0.03,
	}
	got := Compute(kayakCart(), cfg)

	if !approx(got.ServicesSubtotal, 60) {
		t.Fatalf("services_subtotal = %v, want 60", got.ServicesSubtotal)
	}
	if !approx(got.TripProtectionFee, 5.99) {
		t.Fatalf("trip_protection_fee = %v, want 5.99", got.TripProtectionFee)
	}
	if !approx(got.TaxAmount, 65.99*0.07) {
		t.Fatalf("tax_amount = %v, want %v", got.TaxAmount, 65.99*0.07)
	}
	if !approx(got.CreditCardFee, (65.99+65.99*0.07)*0.03) {
		t.Fatalf("credit_card_fee = %v", got.CreditCardFee)
	}
	if got.FinalTotal != 72.73 {
		t.Fatalf("final_total = %v, want 72.73", got.FinalTotal)
	}
}

func TestComputeManualPaymentSkipsCardFee(t *testing.T) {
	cfg := Config{
		TripProtection:    true,
		TripProtectionFee: 5.99,
		TaxRate:           0.07,
		CreditCardFeeRate: 0,
	}
	got := Compute(kayakCart(), cfg)

	if got.CreditCardFee != 0 {
		t.Fatalf("credit_card_fee = %v, want 0", got.CreditCardFee)
	}
	if got.FinalTotal != 70.61 {
		t.Fatalf("final_total = %v, want 70.61", got.FinalTotal)
	}
}

func TestComputeZeroRates(t *testing.T) {
	items := []models.LineItem{
		{ServiceID: "luxury_cabana_3hr", UnitPrice: 100, Quantity: 2, Subtotal: 200},
		{ServiceID: "paddle_board", UnitPrice: 75, Quantity: 1, Subtotal: 75},
		{ServiceID: "luxury_cabana_hourly", UnitPrice: 50, Quantity: 1, Subtotal: 50},
	}
	got := Compute(items, Config{})

	if got.TripProtectionFee != 0 || got.TaxAmount != 0 || got.CreditCardFee != 0 {
		t.Fatalf("expected all fees zero, got %+v", got)
	}
	if got.FinalTotal != 325.00 {
		t.Fatalf("final_total = %v, want 325.00", got.FinalTotal)
	}
}

// The protection fee value is ignored unless protection is enabled.
func TestComputeProtectionDisabled(t *testing.T) {
	cfg := Config{
		TripProtection:    false,
		TripProtectionFee: 5.99,
		TaxRate:           0.07,
	}
	got := Compute(kayakCart(), cfg)

	if got.TripProtectionFee != 0 {
		t.Fatalf("trip_protection_fee = %v, want 0", got.TripProtectionFee)
	}
	if !approx(got.TaxAmount, 60*0.07) {
		t.Fatalf("tax_amount = %v, want %v", got.TaxAmount, 60*0.07)
	}
}

// The card surcharge is taken on the taxed amount, not taxed itself.
func TestComputeSurchargeNotTaxed(t *testing.T) {
	cfg := Config{TaxRate: 0.07, CreditCardFeeRate: 0.03}
	got := Compute(kayakCart(), cfg)

	wantCard := (60 + 60*0.07) * 0.03
	if !approx(got.CreditCardFee, wantCard) {
		t.Fatalf("credit_card_fee = %v, want %v", got.CreditCardFee, wantCard)
	}
	if !approx(got.TaxAmount, 60*0.07) {
		t.Fatalf("tax_amount = %v, want %v", got.TaxAmount, 60*0.07)
	}
}

func TestComputeIsPure(t *testing.T) {
	items := kayakCart()
	cfg := Config{TripProtection: true, TripProtectionFee: 5.99, TaxRate: 0.07, CreditCardFeeRate: 0.03}

	first := Compute(items, cfg)
	second := Compute(items, cfg)
	if first != second {
		t.Fatalf("repeated calls disagree: %+v vs %+v", first, second)
	}
	if items[0].Subtotal != 60 {
		t.Fatalf("input mutated: %+v", items[0])
	}
}

// Intermediates stay unrounded; only the final total is rounded to cents.
func TestComputeRoundsFinalOnly(t *testing.T) {
	items := []models.LineItem{
		{ServiceID: "canoe", UnitPrice: 75, Quantity: 1, Subtotal: 75},
	}
	got := Compute(items, Config{TaxRate: 0.0715, CreditCardFeeRate: 0.0349})

	tax := 75 * 0.0715
	card := (75 + tax) * 0.0349
	if !approx(got.TaxAmount, tax) {
		t.Fatalf("tax_amount rounded early: %v vs %v", got.TaxAmount, tax)
	}
	if !approx(got.CreditCardFee, card) {
		t.Fatalf("credit_card_fee rounded early: %v vs %v", got.CreditCardFee, card)
	}
	want := math.Round((75+tax+card)*100) / 100
	if got.FinalTotal != want {
		t.Fatalf("final_total = %v, want %v", got.FinalTotal, want)
	}
}

func TestSubtotalMultiplies(t *testing.T) {
	items := []models.LineItem{
		{UnitPrice: 60, Quantity: 2},
		{UnitPrice: 75, Quantity: 1},
	}
	if got := Subtotal(items); !approx(got, 195) {
		t.Fatalf("Subtotal = %v, want 195", got)
	}
	if got := Subtotal(nil); got != 0 {
		t.Fatalf("Subtotal(nil) = %v, want 0", got)
	}
}
