package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeProvider creates hosted checkout sessions against the Stripe API.
type StripeProvider struct {
	apiKey string
	client *http.Client
}

func NewStripeProvider() *StripeProvider {
	return &StripeProvider{
		apiKey: os.Getenv("STRIPE_API_KEY"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *StripeProvider) Name() string { return "stripe" }

func (s *StripeProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("customer_email", req.CustomerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", req.Currency)
	form.Set("line_items[0][price_data][product_data][name]", "Gulf Float booking "+req.BookingID)
	// Stripe amounts are integer cents.
	form.Set("line_items[0][price_data][unit_amount]", fmt.Sprintf("%d", int64(req.Amount*100+0.5)))
	for k, v := range req.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := s.do(ctx, http.MethodPost, "/checkout/sessions", form, &out); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		Provider:    "stripe",
		SessionID:   out.ID,
		CheckoutURL: out.URL,
	}, nil
}

func (s *StripeProvider) GetStatus(ctx context.Context, sessionID string) (string, error) {
	var out struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := s.do(ctx, http.MethodGet, "/checkout/sessions/"+sessionID, nil, &out); err != nil {
		return "", err
	}
	return out.PaymentStatus, nil
}

func (s *StripeProvider) do(ctx context.Context, method, path string, form url.Values, out interface{}) error {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequestWithContext(ctx, method, stripeAPIBase+path, body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.apiKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("stripe %s %s: %d %s", method, path, resp.StatusCode, apiErr.Error.Message)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
