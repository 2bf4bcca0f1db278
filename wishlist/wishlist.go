package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vesture/db"
	"vesture/globals"
	"vesture/models"
	"vesture/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddItem puts a catalog product on the caller's wishlist.
func AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		ProductID string `json:"productid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "productid is required")
		return
	}

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": body.ProductID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	item := models.WishlistItem{
		WishID:    "w" + utils.GenerateName(10),
		UserID:    userID,
		ProductID: body.ProductID,
		AddedAt:   time.Now(),
	}
	if _, err := db.WishlistCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add wishlist item")
		return
	}

	item.Product = &product
	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GetItems lists the caller's wishlist with each referenced product
// populated. Items whose product has since been deleted are returned
// without one.
func GetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.M{"added_at": -1})
	cursor, err := db.WishlistCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode wishlist")
		return
	}

	for i := range items {
		var product models.Product
		if err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": items[i].ProductID}).Decode(&product); err == nil {
			items[i].Product = &product
		} else if err != mongo.ErrNoDocuments {
			log.Printf("wishlist: product lookup failed for %s: %v", items[i].ProductID, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func GetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	var item models.WishlistItem
	err := db.WishlistCollection.FindOne(ctx, bson.M{"wishid": ps.ByName("id"), "userid": userID}).Decode(&item)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Wishlist item not found")
		return
	}

	var product models.Product
	if err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": item.ProductID}).Decode(&product); err == nil {
		item.Product = &product
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)

	res, err := db.WishlistCollection.DeleteOne(ctx, bson.M{"wishid": ps.ByName("id"), "userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Wishlist item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
