package checkout

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"gulffloat/booking"
	"gulffloat/cart"
	"gulffloat/catalog"
	"gulffloat/db"
	"gulffloat/fees"
	"gulffloat/models"
	"gulffloat/notify"
	"gulffloat/payments"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Client totals are advisory; disagreement beyond a cent of rounding slack
// is rejected rather than charged.
const totalTolerance = 0.01

type AdditionalFees struct {
	TripProtectionFee *float64 `json:"trip_protection_fee"`
	TaxRate           float64  `json:"tax_rate"`
	CreditCardFeeRate float64  `json:"credit_card_fee_rate"`
}

type Request struct {
	CustomerInfo   models.CustomerInfo `json:"customer_info"`
	PaymentMethod  string              `json:"payment_method"`
	TripProtection bool                `json:"trip_protection"`
	AdditionalFees *AdditionalFees     `json:"additional_fees"`
	FinalTotal     *float64            `json:"final_total"`
	SuccessURL     string              `json:"success_url"`
	CancelURL      string              `json:"cancel_url"`
}

// FeeConfig validates the request's fee parameters. The trip-protection fee
// has no default: enabling protection without supplying the fee is an error.
func FeeConfig(req *Request) (fees.Config, string) {
	cfg := fees.Config{TripProtection: req.TripProtection}
	if req.AdditionalFees != nil {
		cfg.TaxRate = req.AdditionalFees.TaxRate
		cfg.CreditCardFeeRate = req.AdditionalFees.CreditCardFeeRate
		if req.AdditionalFees.TripProtectionFee != nil {
			cfg.TripProtectionFee = *req.AdditionalFees.TripProtectionFee
		}
	}
	if req.TripProtection && (req.AdditionalFees == nil || req.AdditionalFees.TripProtectionFee == nil) {
		return cfg, "missing_trip_protection_fee"
	}
	return cfg, ""
}

// SnapshotItems prices the cart against the catalog, freezing names and
// unit prices into the booking.
func SnapshotItems(items []models.CartItem) ([]models.LineItem, string) {
	out := make([]models.LineItem, 0, len(items))
	for _, it := range items {
		svc, ok := catalog.Lookup(it.ServiceID)
		if !ok {
			return nil, "invalid_service"
		}
		out = append(out, models.LineItem{
			ServiceID:   it.ServiceID,
			ServiceName: svc.Name,
			UnitPrice:   svc.Price,
			Quantity:    it.Quantity,
			BookingDate: it.BookingDate,
			BookingTime: it.BookingTime,
			Subtotal:    svc.Price * float64(it.Quantity),
		})
	}
	return out, ""
}

// TotalMatches checks the advisory client total against the authoritative
// server-computed one.
func TotalMatches(clientTotal, serverTotal float64) bool {
	return math.Abs(clientTotal-serverTotal) <= totalTolerance
}

// Checkout handles POST /api/cart/:cartid/checkout. The cart is consumed
// (deleted) inside the same operation that creates the booking, so a retry
// sees not-found instead of producing a second booking.
func Checkout(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	provider, err := payments.ForMethod(req.PaymentMethod)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "unsupported_payment_method")
		return
	}

	c, code, reason := cart.Fetch(ctx, ps.ByName("cartid"))
	if c == nil {
		utils.RespondWithError(w, code, reason)
		return
	}
	if len(c.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "empty_cart")
		return
	}

	cfg, badReq := FeeConfig(&req)
	if badReq != "" {
		utils.RespondWithError(w, http.StatusBadRequest, badReq)
		return
	}

	items, badReq := SnapshotItems(c.Items)
	if badReq != "" {
		utils.RespondWithError(w, http.StatusBadRequest, badReq)
		return
	}

	breakdown := fees.Compute(items, cfg)
	if req.FinalTotal != nil && !TotalMatches(*req.FinalTotal, breakdown.FinalTotal) {
		utils.RespondWithError(w, http.StatusBadRequest, "total_mismatch")
		return
	}

	now := time.Now().UTC()
	bk := models.Booking{
		ID:                utils.GetUUID(),
		CartID:            c.CartID,
		CustomerName:      req.CustomerInfo.Name,
		CustomerEmail:     req.CustomerInfo.Email,
		CustomerPhone:     req.CustomerInfo.Phone,
		Items:             items,
		ServicesSubtotal:  breakdown.ServicesSubtotal,
		TripProtection:    req.TripProtection,
		TripProtectionFee: breakdown.TripProtectionFee,
		TaxAmount:         breakdown.TaxAmount,
		CreditCardFee:     breakdown.CreditCardFee,
		TotalAmount:       breakdown.FinalTotal,
		PaymentMethod:     req.PaymentMethod,
		BookingReference:  utils.GenerateBookingReference(),
		PaymentStatus:     "pending",
		Status:            "pending",
		CreatedAt:         now,
	}

	// Booking is persisted before the provider call; a provider failure
	// marks it failed rather than leaving it silently pending.
	if _, err := db.BookingsCollection.InsertOne(ctx, bk); err != nil {
		log.Println("Checkout booking insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create booking")
		return
	}

	result, err := provider.CreateCheckout(ctx, payments.CheckoutRequest{
		BookingID:     bk.ID,
		Amount:        breakdown.FinalTotal,
		Currency:      "usd",
		CustomerEmail: bk.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		Metadata: map[string]string{
			"booking_id":     bk.ID,
			"customer_email": bk.CustomerEmail,
		},
	})
	if err != nil {
		log.Printf("Checkout provider %s error: %v", provider.Name(), err)
		if _, uerr := db.BookingsCollection.UpdateOne(ctx,
			bson.M{"id": bk.ID},
			bson.M{"$set": bson.M{"status": "failed"}},
		); uerr != nil {
			log.Println("Checkout booking fail-mark error:", uerr)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "payment processing error")
		return
	}

	if result.SessionID != "" {
		txn := models.Transaction{
			ID:            utils.GetUUID(),
			BookingID:     bk.ID,
			PaymentMethod: req.PaymentMethod,
			Provider:      result.Provider,
			SessionID:     result.SessionID,
			Amount:        breakdown.FinalTotal,
			Currency:      "usd",
			PaymentStatus: "pending",
			Meta: models.Meta{
				"booking_id":     bk.ID,
				"customer_email": bk.CustomerEmail,
			},
			CustomerEmail: bk.CustomerEmail,
			CreatedAt:     now,
		}
		if _, err := db.TransactionsCollection.InsertOne(ctx, txn); err != nil {
			log.Println("Checkout transaction insert error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "failed to record transaction")
			return
		}
		if _, err := db.BookingsCollection.UpdateOne(ctx,
			bson.M{"id": bk.ID},
			bson.M{"$set": bson.M{"payment_session_id": result.SessionID}},
		); err != nil {
			log.Println("Checkout session-id update error:", err)
		}
		bk.PaymentSessionID = result.SessionID
	}

	if err := cart.Consume(ctx, c.CartID); err != nil {
		log.Println("Checkout cart consume error:", err)
	}

	notify.Publish(notify.BookingCreated, bk)
	booking.Broadcast("booking.created", bk)

	switch result.Provider {
	case "stripe":
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"booking_id":   bk.ID,
			"checkout_url": result.CheckoutURL,
			"session_id":   result.SessionID,
		})
	case "paypal":
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"booking_id":   bk.ID,
			"checkout_url": result.CheckoutURL,
			"payment_id":   result.SessionID,
		})
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"booking_id":           bk.ID,
			"payment_instructions": result.Instructions,
			"payment_account":      result.Account,
			"total_amount":         breakdown.FinalTotal,
		})
	}
}
