package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"gulffloat/catalog"
	"gulffloat/db"
	"gulffloat/models"
	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Carts live for one hour; past that they are treated as absent and purged.
const cartTTL = 1 * time.Hour

// CreateCart handles POST /api/cart/create. The route is registered through
// the :cartid wildcard, so the literal segment is checked here.
func CreateCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("cartid") != "create" {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC()
	c := models.Cart{
		CartID:    utils.GetUUID(),
		Items:     []models.CartItem{},
		CreatedAt: now,
		ExpiresAt: now.Add(cartTTL),
	}

	if _, err := db.CartsCollection.InsertOne(ctx, c); err != nil {
		log.Println("CreateCart InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cart_id":    c.CartID,
		"expires_at": c.ExpiresAt,
	})
}

// fetchCart loads a live cart. Expired carts are purged as a side effect so
// the next read sees not-found.
func fetchCart(ctx context.Context, cartID string) (*models.Cart, int, string) {
	var c models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"cartid": cartID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, http.StatusNotFound, "cart_not_found"
	}
	if err != nil {
		log.Println("fetchCart FindOne error:", err)
		return nil, http.StatusInternalServerError, "internal error"
	}
	if IsExpired(&c, time.Now().UTC()) {
		if _, derr := db.CartsCollection.DeleteOne(ctx, bson.M{"cartid": cartID}); derr != nil {
			log.Println("fetchCart purge error:", derr)
		}
		return nil, http.StatusGone, "cart_expired"
	}
	return &c, http.StatusOK, ""
}

// IsExpired reports whether the cart is past its expiry at the given instant.
func IsExpired(c *models.Cart, now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// GetCart handles GET /api/cart/:cartid
func GetCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	c, code, reason := fetchCart(ctx, ps.ByName("cartid"))
	if c == nil {
		utils.RespondWithError(w, code, reason)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"cart_id":       c.CartID,
		"items":         c.Items,
		"total_amount":  Subtotal(c.Items),
		"customer_info": c.CustomerInfo,
		"expires_at":    c.ExpiresAt,
	})
}

// Subtotal prices the cart against the live catalog. Unknown service ids
// contribute nothing; they cannot normally appear because AddItem validates.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		if svc, ok := catalog.Lookup(it.ServiceID); ok {
			sum += svc.Price * float64(it.Quantity)
		}
	}
	return sum
}

// AddItem handles POST /api/cart/:cartid/add. Duplicate lines for the same
// service and slot stay distinct; nothing is merged.
func AddItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if item.Quantity <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_quantity")
		return
	}
	if _, ok := catalog.Lookup(item.ServiceID); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_service")
		return
	}

	c, code, reason := fetchCart(ctx, ps.ByName("cartid"))
	if c == nil {
		utils.RespondWithError(w, code, reason)
		return
	}

	update := bson.M{"$push": bson.M{"items": item}}
	if _, err := db.CartsCollection.UpdateOne(ctx, bson.M{"cartid": c.CartID}, update); err != nil {
		log.Println("AddItem UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "item added", "cart_id": c.CartID})
}

// RemoveAt returns items with the element at idx removed, order preserved.
// ok is false when idx is out of range; the input is never mutated.
func RemoveAt(items []models.CartItem, idx int) ([]models.CartItem, bool) {
	if idx < 0 || idx >= len(items) {
		return items, false
	}
	out := make([]models.CartItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, true
}

// RemoveItem handles DELETE /api/cart/:cartid/item/:index
func RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	idx, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_index")
		return
	}

	c, code, reason := fetchCart(ctx, ps.ByName("cartid"))
	if c == nil {
		utils.RespondWithError(w, code, reason)
		return
	}

	items, ok := RemoveAt(c.Items, idx)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_index")
		return
	}

	update := bson.M{"$set": bson.M{"items": items}}
	if _, err := db.CartsCollection.UpdateOne(ctx, bson.M{"cartid": c.CartID}, update); err != nil {
		log.Println("RemoveItem UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "item removed"})
}

// SetCustomer handles PUT /api/cart/:cartid/customer
func SetCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var info models.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	c, code, reason := fetchCart(ctx, ps.ByName("cartid"))
	if c == nil {
		utils.RespondWithError(w, code, reason)
		return
	}

	update := bson.M{"$set": bson.M{"customer_info": info}}
	if _, err := db.CartsCollection.UpdateOne(ctx, bson.M{"cartid": c.CartID}, update); err != nil {
		log.Println("SetCustomer UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to update customer")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "customer updated"})
}

// Fetch exposes cart loading to the checkout orchestrator.
func Fetch(ctx context.Context, cartID string) (*models.Cart, int, string) {
	return fetchCart(ctx, cartID)
}

// Consume deletes the cart as part of a successful checkout so a retried
// checkout sees not-found instead of creating a duplicate booking.
func Consume(ctx context.Context, cartID string) error {
	_, err := db.CartsCollection.DeleteOne(ctx, bson.M{"cartid": cartID})
	return err
}
