package webhook

import (
	"context"
	"log"
	"net/http"
	"time"

	"gulffloat/booking"
	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/notify"
	"gulffloat/payments"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CheckoutStatus handles GET /api/payments/checkout/status/:sessionid. It
// asks the provider for the session state and reconciles local records when
// the provider reports the payment complete.
func CheckoutStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	sessionID := ps.ByName("sessionid")

	var txn models.Transaction
	err := db.TransactionsCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&txn)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "session_not_found")
		return
	}
	if err != nil {
		log.Println("CheckoutStatus transaction lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	provider, perr := payments.ForMethod(txn.PaymentMethod)
	if perr != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status, err := provider.GetStatus(ctx, sessionID)
	if err != nil {
		log.Printf("CheckoutStatus provider %s error: %v", provider.Name(), err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to check payment status")
		return
	}

	if status == "paid" {
		transitioned, b, _ := ReconcilePaid(ctx, sessionID)
		if transitioned {
			notify.Publish(notify.BookingPaid, *b)
			booking.Broadcast("booking.paid", *b)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"session_id":     sessionID,
		"payment_status": status,
		"amount":         txn.Amount,
		"currency":       txn.Currency,
	})
}
