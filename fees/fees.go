// Package fees computes the checkout fee pipeline. The calculator is a
// pure function and knows nothing about payment methods: callers pass a
// zero credit_card_fee_rate for manually-settled methods.
package fees

import (
	"gulffloat/models"
	"gulffloat/utils"
)

// Config holds the caller-supplied fee parameters for one checkout.
type Config struct {
	TripProtection    bool    `json:"trip_protection"`
	TripProtectionFee float64 `json:"trip_protection_fee"`
	TaxRate           float64 `json:"tax_rate"`
	CreditCardFeeRate float64 `json:"credit_card_fee_rate"`
}

// Breakdown is the computed result. Intermediate amounts are kept
// unrounded; only FinalTotal is rounded, once, to cents.
type Breakdown struct {
	ServicesSubtotal  float64 `json:"services_subtotal"`
	TripProtectionFee float64 `json:"trip_protection_fee"`
	TaxAmount         float64 `json:"tax_amount"`
	CreditCardFee     float64 `json:"credit_card_fee"`
	FinalTotal        float64 `json:"final_total"`
}

// Compute runs the fixed fee pipeline:
// subtotal -> + trip protection -> * tax -> * card surcharge.
// The tax base includes the protection fee but never the card surcharge;
// the surcharge applies after tax and is not compounded with it.
func Compute(items []models.LineItem, cfg Config) Breakdown {
	subtotal := Subtotal(items)

	protection := 0.0
	if cfg.TripProtection {
		protection = cfg.TripProtectionFee
	}

	taxableBase := subtotal + protection
	taxAmount := taxableBase * cfg.TaxRate
	subtotalWithTax := taxableBase + taxAmount
	cardFee := subtotalWithTax * cfg.CreditCardFeeRate

	return Breakdown{
		ServicesSubtotal:  subtotal,
		TripProtectionFee: protection,
		TaxAmount:         taxAmount,
		CreditCardFee:     cardFee,
		FinalTotal:        utils.RoundMoney(subtotalWithTax + cardFee),
	}
}

// Subtotal sums unit_price * quantity with no intermediate rounding.
func Subtotal(items []models.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}
