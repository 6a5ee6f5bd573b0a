package payments

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// ManualProvider covers transfer apps settled outside this system. It only
// produces instruction text; completion can never be confirmed here, so the
// booking stays pending until staff reconcile it.
type ManualProvider struct {
	method  string
	account string
}

var defaultAccounts = map[string]string{
	"venmo":   "@ExclusiveFloat850",
	"cashapp": "$ExclusiveFloat850",
	"zelle":   "pay@exclusivegulffloat.com",
}

func NewManualProvider(method string) *ManualProvider {
	account := os.Getenv(strings.ToUpper(method) + "_ACCOUNT")
	if account == "" {
		account = defaultAccounts[method]
	}
	return &ManualProvider{method: method, account: account}
}

func (m *ManualProvider) Name() string { return m.method }

func (m *ManualProvider) CreateCheckout(_ context.Context, req CheckoutRequest) (CheckoutResult, error) {
	return CheckoutResult{
		Provider:     m.method,
		Instructions: Instructions(m.method, m.account, req.Amount, req.BookingID),
		Account:      m.account,
	}, nil
}

// GetStatus always reports pending: a manual transfer has no provider-side
// session to poll.
func (m *ManualProvider) GetStatus(_ context.Context, _ string) (string, error) {
	return "pending", nil
}

var methodLabels = map[string]string{
	"venmo":   "Venmo",
	"cashapp": "Cash App",
	"zelle":   "Zelle",
}

// Instructions builds the customer-facing payment text for a manual method.
func Instructions(method, account string, amount float64, bookingID string) string {
	label := methodLabels[method]
	if label == "" {
		label = method
	}
	return fmt.Sprintf(
		"Please send $%.2f via %s to %s and include booking %s in the payment note. "+
			"Your booking will be confirmed once payment is received.",
		amount, label, account, bookingID)
}
