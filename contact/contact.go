package contact

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmitContact handles POST /api/contact
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing_fields")
		return
	}

	msg.ID = utils.GetUUID()
	msg.CreatedAt = time.Now().UTC()

	if _, err := db.ContactsCollection.InsertOne(ctx, msg); err != nil {
		log.Println("SubmitContact InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to store message")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, msg)
}

// GetContacts handles GET /api/contacts (admin), newest first.
func GetContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := db.ContactsCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("GetContacts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer cur.Close(ctx)

	var msgs []models.ContactMessage
	if err := cur.All(ctx, &msgs); err != nil {
		log.Println("GetContacts decode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if msgs == nil {
		msgs = []models.ContactMessage{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"messages": msgs})
}
