package models

import (
	"time"
)

// Meta is a generic key-value map for transaction metadata
type Meta map[string]interface{}

type CustomerInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// CartItem is one requested rental line. Items never merge: adding the
// same service twice keeps two distinct lines.
type CartItem struct {
	ServiceID       string `json:"service_id" bson:"service_id"`
	Quantity        int    `json:"quantity" bson:"quantity"`
	BookingDate     string `json:"booking_date" bson:"booking_date"` // 2006-01-02
	BookingTime     string `json:"booking_time" bson:"booking_time"` // 15:04:05
	SpecialRequests string `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
}

type Cart struct {
	CartID       string        `json:"cart_id" bson:"cartid"`
	Items        []CartItem    `json:"items" bson:"items"`
	CustomerInfo *CustomerInfo `json:"customer_info,omitempty" bson:"customer_info,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	ExpiresAt    time.Time     `json:"expires_at" bson:"expires_at"`
}

// LineItem is a priced snapshot taken at checkout. Later catalog price
// changes never touch an existing booking.
type LineItem struct {
	ServiceID   string  `json:"service_id" bson:"service_id"`
	ServiceName string  `json:"service_name" bson:"service_name"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	BookingDate string  `json:"booking_date" bson:"booking_date"`
	BookingTime string  `json:"booking_time" bson:"booking_time"`
	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
}

// Booking statuses: payment_status pending -> paid, status pending ->
// confirmed (or failed when the provider call fails). Transitions happen
// at most once, driven by webhooks or the status poll.
type Booking struct {
	ID                string     `json:"id" bson:"id"`
	CartID            string     `json:"cart_id" bson:"cart_id"`
	CustomerName      string     `json:"customer_name" bson:"customer_name"`
	CustomerEmail     string     `json:"customer_email" bson:"customer_email"`
	CustomerPhone     string     `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Items             []LineItem `json:"items" bson:"items"`
	ServicesSubtotal  float64    `json:"services_subtotal" bson:"services_subtotal"`
	TripProtection    bool       `json:"trip_protection" bson:"trip_protection"`
	TripProtectionFee float64    `json:"trip_protection_fee" bson:"trip_protection_fee"`
	TaxAmount         float64    `json:"tax_amount" bson:"tax_amount"`
	CreditCardFee     float64    `json:"credit_card_fee" bson:"credit_card_fee"`
	TotalAmount       float64    `json:"total_amount" bson:"total_amount"`
	PaymentMethod     string     `json:"payment_method" bson:"payment_method"`
	BookingReference  string     `json:"booking_reference" bson:"booking_reference"`
	PaymentStatus     string     `json:"payment_status" bson:"payment_status"` // pending, paid
	Status            string     `json:"status" bson:"status"`                 // pending, confirmed, failed
	PaymentSessionID  string     `json:"payment_session_id,omitempty" bson:"payment_session_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at" bson:"created_at"`
}

// Transaction records one checkout attempt against a payment provider.
type Transaction struct {
	ID            string    `json:"id" bson:"id"`
	BookingID     string    `json:"booking_id" bson:"booking_id"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	Provider      string    `json:"provider" bson:"provider"`
	SessionID     string    `json:"session_id" bson:"session_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	Currency      string    `json:"currency" bson:"currency"`
	PaymentStatus string    `json:"payment_status" bson:"payment_status"` // pending, paid
	Meta          Meta      `json:"meta,omitempty" bson:"meta,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
