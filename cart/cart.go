package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"pawmart/db"
	"pawmart/models"
	"pawmart/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// cartInput accepts the item id as either a JSON number or string; the
// storefront client sends numbers, the cart stores string keys.
type cartInput struct {
	ItemID json.Number `json:"itemId"`
}

func userFilter(r *http.Request) (bson.M, bool) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return nil, false
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid}, true
}

// AddToCart bumps the item quantity by one in a single atomic update.
// Concurrent adds for the same user cannot lose increments.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input cartInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ItemID.String() == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	filter, ok := userFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	update := bson.M{"$inc": bson.M{"cartData." + input.ItemID.String(): 1}}
	res, err := db.UserCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Println("AddToCart UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Added"})
}

// RemoveFromCart decrements by one, guarded so the quantity never goes
// below zero. Removing from an empty slot is a no-op.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input cartInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ItemID.String() == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	filter, ok := userFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	key := "cartData." + input.ItemID.String()
	guarded := bson.M{"_id": filter["_id"], key: bson.M{"$gt": 0}}
	res, err := db.UserCollection.UpdateOne(ctx, guarded, bson.M{"$inc": bson.M{key: -1}})
	if err != nil {
		log.Println("RemoveFromCart UpdateOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}

	if res.MatchedCount == 0 {
		// Either the user is gone or the slot is already at zero.
		err := db.UserCollection.FindOne(ctx, filter).Err()
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		} else if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from cart")
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Removed"})
}

// GetCart returns the user's quantity map. Absent keys mean zero.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter, ok := userFilter(r)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Println("GetCart FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	if user.CartData == nil {
		user.CartData = map[string]int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, user.CartData)
}
