package waiver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Validate enforces the submission rules: an emergency contact with name
// and phone, and for every minor a guardian name and guardian signature.
// The cart reference is soft and never checked for existence.
func Validate(wv *models.Waiver) string {
	if wv.EmergencyContact.Name == "" {
		return "missing_emergency_contact_name"
	}
	if wv.EmergencyContact.Phone == "" {
		return "missing_emergency_contact_phone"
	}
	if len(wv.Guests) == 0 {
		return "missing_guests"
	}
	for _, g := range wv.Guests {
		if g.Name == "" {
			return "missing_guest_name"
		}
		if g.ParticipantSignature == "" {
			return "missing_participant_signature"
		}
		if g.IsMinor {
			if g.GuardianName == "" {
				return "missing_guardian_name"
			}
			if g.GuardianSignature == "" {
				return "missing_guardian_signature"
			}
		}
	}
	return ""
}

// SubmitWaiver handles POST /api/waivers/submit
func SubmitWaiver(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var wv models.Waiver
	if err := json.NewDecoder(r.Body).Decode(&wv); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if reason := Validate(&wv); reason != "" {
		utils.RespondWithError(w, http.StatusBadRequest, reason)
		return
	}

	wv.ID = utils.GetUUID()
	// The stored count always mirrors the guest list, whatever the client sent.
	wv.TotalGuests = len(wv.Guests)
	wv.CreatedAt = time.Now().UTC()
	if wv.SignedAt.IsZero() {
		wv.SignedAt = wv.CreatedAt
	}

	if err := storeSignatures(&wv); err != nil {
		log.Println("SubmitWaiver signature store error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_signature_image")
		return
	}

	if _, err := db.WaiversCollection.InsertOne(ctx, wv); err != nil {
		log.Println("SubmitWaiver InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to store waiver")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"waiver_id":    wv.ID,
		"total_guests": wv.TotalGuests,
		"message":      "waiver recorded",
	})
}

// GetWaiver handles GET /api/waivers/:id
func GetWaiver(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var wv models.Waiver
	err := db.WaiversCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&wv)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "waiver_not_found")
		return
	}
	if err != nil {
		log.Println("GetWaiver FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, wv)
}

// GetWaivers handles GET /api/waivers, newest first.
func GetWaivers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := db.WaiversCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("GetWaivers Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer cur.Close(ctx)

	var waivers []models.Waiver
	if err := cur.All(ctx, &waivers); err != nil {
		log.Println("GetWaivers decode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if waivers == nil {
		waivers = []models.Waiver{}
	}

	utils.RespondWithJSON(w, http.StatusOK, waivers)
}
