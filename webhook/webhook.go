package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"gulffloat/booking"
	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/notify"
	"gulffloat/rdx"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Providers may redeliver events; each event id is claimed once and the
// claim outlives any realistic redelivery window.
const eventClaimTTL = 24 * time.Hour

// CompletedEvent is the provider-independent result of parsing a webhook
// payload.
type CompletedEvent struct {
	EventID   string
	SessionID string
	Completed bool
}

// ParseStripeEvent extracts the session correlation from a Stripe event.
func ParseStripeEvent(body []byte) (CompletedEvent, error) {
	var payload struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID            string `json:"id"`
				PaymentStatus string `json:"payment_status"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return CompletedEvent{}, err
	}
	if payload.ID == "" || payload.Data.Object.ID == "" {
		return CompletedEvent{}, fmt.Errorf("missing event or session id")
	}
	return CompletedEvent{
		EventID:   payload.ID,
		SessionID: payload.Data.Object.ID,
		Completed: payload.Type == "checkout.session.completed" && payload.Data.Object.PaymentStatus == "paid",
	}, nil
}

// ParsePayPalEvent extracts the payment correlation from a PayPal event.
// The parent payment id is what checkout stored as the session id.
func ParsePayPalEvent(body []byte) (CompletedEvent, error) {
	var payload struct {
		ID        string `json:"id"`
		EventType string `json:"event_type"`
		Resource  struct {
			ID            string `json:"id"`
			ParentPayment string `json:"parent_payment"`
		} `json:"resource"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return CompletedEvent{}, err
	}
	sessionID := payload.Resource.ParentPayment
	if sessionID == "" {
		sessionID = payload.Resource.ID
	}
	if payload.ID == "" || sessionID == "" {
		return CompletedEvent{}, fmt.Errorf("missing event or payment id")
	}
	return CompletedEvent{
		EventID:   payload.ID,
		SessionID: sessionID,
		Completed: payload.EventType == "PAYMENT.SALE.COMPLETED",
	}, nil
}

// HandleStripe handles POST /api/webhook/stripe
func HandleStripe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleProviderEvent(w, r, "stripe", ParseStripeEvent)
}

// HandlePayPal handles POST /api/webhook/paypal
func HandlePayPal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleProviderEvent(w, r, "paypal", ParsePayPalEvent)
}

func handleProviderEvent(w http.ResponseWriter, r *http.Request, provider string, parse func([]byte) (CompletedEvent, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "unreadable_body")
		return
	}

	event, err := parse(body)
	if err != nil {
		log.Printf("webhook %s: bad payload: %v", provider, err)
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_payload")
		return
	}

	if !event.Completed {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ignored"})
		return
	}

	claimed, err := rdx.RdxSetNX("webhook_event:"+provider+":"+event.EventID, "1", eventClaimTTL)
	if err != nil {
		log.Printf("webhook %s: event claim error: %v", provider, err)
		// Fall through: the pending-only updates below keep the
		// transition single-shot even without the claim.
	} else if !claimed {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "duplicate"})
		return
	}

	transitioned, b, found := ReconcilePaid(ctx, event.SessionID)
	if !found {
		// Unknown session: acknowledge so the provider stops retrying.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "ignored"})
		return
	}
	if transitioned {
		notify.Publish(notify.BookingPaid, *b)
		booking.Broadcast("booking.paid", *b)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success"})
}

// ReconcilePaid marks the transaction and its booking paid/confirmed. The
// updates are filtered on pending status so the transition happens at most
// once regardless of how often it is attempted.
func ReconcilePaid(ctx context.Context, sessionID string) (transitioned bool, b *models.Booking, found bool) {
	var txn models.Transaction
	err := db.TransactionsCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&txn)
	if err == mongo.ErrNoDocuments {
		return false, nil, false
	}
	if err != nil {
		log.Println("ReconcilePaid transaction lookup error:", err)
		return false, nil, false
	}

	if _, err := db.TransactionsCollection.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "payment_status": "pending"},
		bson.M{"$set": bson.M{"payment_status": "paid", "updated_at": time.Now().UTC()}},
	); err != nil {
		log.Println("ReconcilePaid transaction update error:", err)
	}

	res, err := db.BookingsCollection.UpdateOne(ctx,
		bson.M{"id": txn.BookingID, "payment_status": "pending"},
		bson.M{"$set": bson.M{"payment_status": "paid", "status": "confirmed"}},
	)
	if err != nil {
		log.Println("ReconcilePaid booking update error:", err)
		return false, nil, true
	}

	var updated models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"id": txn.BookingID}).Decode(&updated); err != nil {
		log.Println("ReconcilePaid booking reload error:", err)
		return false, nil, true
	}
	return res.ModifiedCount > 0, &updated, true
}
