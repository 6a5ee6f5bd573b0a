package booking

import (
	"context"
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

// GetBookings handles GET /api/bookings, newest first.
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := db.BookingsCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("GetBookings Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		log.Println("GetBookings decode error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": ps.ByName("id")}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "booking_not_found")
		return
	}
	if err != nil {
		log.Println("GetBooking FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "internal error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, b)
}
