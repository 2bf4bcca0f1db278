package closet

import (
	"context"
	"encoding/json"
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

// MergeFromProduct fills the item's descriptive fields from the linked
// product. Precedence is product-first: a request-supplied value
// survives only where the product lacks that field.
func MergeFromProduct(item *models.ClosetItem, p *models.Product) {
	if p.Name != "" {
		item.Name = p.Name
	}
	if p.Type != "" {
		item.Type = p.Type
	}
	if p.Color != "" {
		item.Color = p.Color
	}
	if p.Image != "" {
		item.Image = p.Image
	}
	if p.Season != "" {
		item.Season = p.Season
	}
	if p.Occasion != "" {
		item.Occasion = p.Occasion
	}
}

// CreateClosetItem accepts either a product reference or a standalone
// description. Without a product reference a name is mandatory.
func CreateClosetItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var item models.ClosetItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if item.ProductID != "" {
		var product models.Product
		err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": item.ProductID}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				utils.RespondWithError(w, http.StatusNotFound, "Product not found")
				return
			}
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		MergeFromProduct(&item, &product)
	} else if item.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required for custom items")
		return
	}

	item.ItemID = "c" + utils.GenerateName(10)
	item.UserID = userID
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	if _, err := db.ClosetCollection.InsertOne(ctx, item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create closet item")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, item)
}

// GetClosetItems lists a user's closet, newest first.
func GetClosetItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("userid")
	if userID == "" {
		if callerID, ok := r.Context().Value(globals.UserIDKey).(string); ok {
			userID = callerID
		}
	}
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "userid is required")
		return
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.ClosetCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch closet")
		return
	}
	defer cursor.Close(ctx)

	items := []models.ClosetItem{}
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode closet")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

func GetClosetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.ClosetItem
	err := db.ClosetCollection.FindOne(ctx, bson.M{"itemid": ps.ByName("id")}).Decode(&item)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Closet item not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

func UpdateClosetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	itemID := ps.ByName("id")

	var existing models.ClosetItem
	if err := db.ClosetCollection.FindOne(ctx, bson.M{"itemid": itemID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Closet item not found")
		return
	}
	if existing.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var body struct {
		Name     *string   `json:"name"`
		Type     *string   `json:"type"`
		Color    *string   `json:"color"`
		Season   *string   `json:"season"`
		Occasion *string   `json:"occasion"`
		Tags     *[]string `json:"tags"`
		Image    *string   `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Name != nil {
		if *body.Name == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		set["name"] = *body.Name
	}
	if body.Type != nil {
		set["type"] = *body.Type
	}
	if body.Color != nil {
		set["color"] = *body.Color
	}
	if body.Season != nil {
		set["season"] = *body.Season
	}
	if body.Occasion != nil {
		set["occasion"] = *body.Occasion
	}
	if body.Tags != nil {
		set["tags"] = *body.Tags
	}
	if body.Image != nil {
		set["image"] = *body.Image
	}

	if _, err := db.ClosetCollection.UpdateOne(ctx, bson.M{"itemid": itemID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update closet item")
		return
	}

	if err := db.ClosetCollection.FindOne(ctx, bson.M{"itemid": itemID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Fetch failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, existing)
}

func DeleteClosetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	itemID := ps.ByName("id")

	var existing models.ClosetItem
	if err := db.ClosetCollection.FindOne(ctx, bson.M{"itemid": itemID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Closet item not found")
		return
	}
	if existing.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.ClosetCollection.DeleteOne(ctx, bson.M{"itemid": itemID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
