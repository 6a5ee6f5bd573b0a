package payments

import (
	"context"
	"strings"
	"testing"
)

func TestInstructionsMentionEverything(t *testing.T) {
	text := Instructions("venmo", "@ExclusiveFloat850", 72.73, "bk-123")

	for _, want := range []string{"$72.73", "Venmo", "@ExclusiveFloat850", "bk-123"} {
		if !strings.Contains(text, want) {
			t.Fatalf("instructions missing %q: %s", want, text)
		}
	}
}

func TestInstructionsUnknownMethodLabel(t *testing.T) {
	text := Instructions("barter", "acct", 10, "bk-1")
	if !strings.Contains(text, "barter") {
		t.Fatalf("fallback label missing: %s", text)
	}
}

func TestManualProviderDefaults(t *testing.T) {
	want := map[string]string{
		"venmo":   "@ExclusiveFloat850",
		"cashapp": "$ExclusiveFloat850",
		"zelle":   "pay@exclusivegulffloat.com",
	}
	for method, account := range want {
		p := NewManualProvider(method)
		if p.Name() != method {
			t.Fatalf("Name() = %q, want %q", p.Name(), method)
		}
		res, err := p.CreateCheckout(context.Background(), CheckoutRequest{
			BookingID: "bk-9", Amount: 70.61, Currency: "usd",
		})
		if err != nil {
			t.Fatalf("CreateCheckout(%s): %v", method, err)
		}
		if res.Account != account {
			t.Fatalf("%s account = %q, want %q", method, res.Account, account)
		}
		if res.SessionID != "" {
			t.Fatalf("%s should have no provider session", method)
		}
		if !strings.Contains(res.Instructions, account) {
			t.Fatalf("%s instructions missing account: %s", method, res.Instructions)
		}
	}
}

func TestManualProviderStatusAlwaysPending(t *testing.T) {
	p := NewManualProvider("venmo")
	status, err := p.GetStatus(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "pending" {
		t.Fatalf("status = %q, want pending", status)
	}
}

func TestForMethod(t *testing.T) {
	RegisterDefaults()

	for _, method := range []string{"stripe", "paypal", "venmo", "cashapp", "zelle"} {
		p, err := ForMethod(method)
		if err != nil {
			t.Fatalf("ForMethod(%s): %v", method, err)
		}
		if p == nil {
			t.Fatalf("ForMethod(%s) returned nil provider", method)
		}
	}

	if _, err := ForMethod("bitcoin"); err == nil {
		t.Fatal("unregistered method should error")
	}
}
