// Package payments isolates the payment providers behind one interface so
// the checkout orchestrator never branches on a method string. Each method
// maps to exactly one provider; adding a method touches nothing outside
// this package.
package payments

import (
	"context"
	"errors"
)

// CheckoutRequest is the provider-agnostic input: the amount is the
// server-computed final total, never a client-supplied figure.
type CheckoutRequest struct {
	BookingID     string
	Amount        float64
	Currency      string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutResult carries whichever fields the provider produced. Hosted
// providers fill SessionID/CheckoutURL; manual ones fill the instruction
// fields and have no external session.
type CheckoutResult struct {
	Provider     string
	SessionID    string
	CheckoutURL  string
	Instructions string
	Account      string
}

type Provider interface {
	Name() string
	// CreateCheckout starts a payment for the given amount and returns
	// provider-specific checkout material.
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
	// GetStatus reports the provider-side payment status for a session.
	GetStatus(ctx context.Context, sessionID string) (string, error)
}

var ErrUnsupportedMethod = errors.New("unsupported payment method")

var registry = map[string]Provider{}

// Register binds a payment method name to a provider.
func Register(method string, p Provider) {
	registry[method] = p
}

// ForMethod resolves the provider for a payment method.
func ForMethod(method string) (Provider, error) {
	p, ok := registry[method]
	if !ok {
		return nil, ErrUnsupportedMethod
	}
	return p, nil
}

// RegisterDefaults wires the built-in providers: hosted checkout for
// stripe/paypal, instruction-only providers for the transfer apps.
func RegisterDefaults() {
	Register("stripe", NewStripeProvider())
	Register("paypal", NewPayPalProvider())

	for _, m := range []string{"venmo", "cashapp", "zelle"} {
		Register(m, NewManualProvider(m))
	}
}
