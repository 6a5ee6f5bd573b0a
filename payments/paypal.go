package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// PayPalProvider creates payments through the PayPal REST API: OAuth client
// credentials, then a payment with an approval redirect URL.
type PayPalProvider struct {
	clientID string
	secret   string
	base     string
	client   *http.Client
}

func NewPayPalProvider() *PayPalProvider {
	base := "https://api.sandbox.paypal.com"
	if os.Getenv("PAYPAL_MODE") == "live" {
		base = "https://api.paypal.com"
	}
	return &PayPalProvider{
		clientID: os.Getenv("PAYPAL_CLIENT_ID"),
		secret:   os.Getenv("PAYPAL_CLIENT_SECRET"),
		base:     base,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *PayPalProvider) Name() string { return "paypal" }

func (p *PayPalProvider) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.base+"/v1/oauth2/token", strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.clientID, p.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal oauth: status %d", resp.StatusCode)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (p *PayPalProvider) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	payload := map[string]interface{}{
		"intent": "sale",
		"payer":  map[string]string{"payment_method": "paypal"},
		"redirect_urls": map[string]string{
			"return_url": req.SuccessURL,
			"cancel_url": req.CancelURL,
		},
		"transactions": []map[string]interface{}{{
			"amount": map[string]string{
				"total":    fmt.Sprintf("%.2f", req.Amount),
				"currency": strings.ToUpper(req.Currency),
			},
			"description": "Gulf Float booking " + req.BookingID,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return CheckoutResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.base+"/v1/payments/payment", bytes.NewReader(body))
	if err != nil {
		return CheckoutResult{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return CheckoutResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return CheckoutResult{}, fmt.Errorf("paypal payment create: status %d", resp.StatusCode)
	}

	var out struct {
		ID    string `json:"id"`
		Links []struct {
			Href string `json:"href"`
			Rel  string `json:"rel"`
		} `json:"links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{Provider: "paypal", SessionID: out.ID}
	for _, l := range out.Links {
		if l.Rel == "approval_url" {
			result.CheckoutURL = l.Href
			break
		}
	}
	return result, nil
}

func (p *PayPalProvider) GetStatus(ctx context.Context, sessionID string) (string, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.base+"/v1/payments/payment/"+sessionID, nil)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal payment status: status %d", resp.StatusCode)
	}

	var out struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	// PayPal reports "approved" on completed sales.
	if out.State == "approved" || out.State == "completed" {
		return "paid", nil
	}
	return out.State, nil
}
