package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vesture/db"
	"vesture/models"
	"vesture/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertFilter is the product identity used by the atomic upsert:
// (name, brand), matching the unique index. Type and color are treated
// as mutable attributes, not identity.
func UpsertFilter(name, brand string) bson.M {
	return bson.M{"name": name, "brand": brand}
}

// UpsertProduct performs the conditional write for one candidate. A
// single FindOneAndUpdate with $setOnInsert closes the
// lookup-then-insert race: two concurrent calls for the same
// (name, brand) settle on one stored record.
func UpsertProduct(ctx context.Context, candidate models.Product) (*models.Product, error) {
	now := time.Now()

	set := bson.M{"updated_at": now}
	if candidate.Type != "" {
		set["type"] = candidate.Type
	}
	if candidate.Color != "" {
		set["color"] = candidate.Color
	}
	if candidate.Price != 0 {
		set["price"] = candidate.Price
	}
	if candidate.Link != "" {
		set["link"] = candidate.Link
	}
	if candidate.Image != "" {
		set["image"] = candidate.Image
	}
	if len(candidate.Tags) > 0 {
		set["tags"] = candidate.Tags
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"productid":  uuid.NewString(),
			"name":       candidate.Name,
			"brand":      candidate.Brand,
			"season":     candidate.Season,
			"occasion":   candidate.Occasion,
			"source":     candidate.Source,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Product
	err := db.ProductsCollection.FindOneAndUpdate(ctx, UpsertFilter(candidate.Name, candidate.Brand), update, opts).Decode(&stored)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Upsert ingests a classifier-sourced candidate description.
func Upsert(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var candidate models.Product
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if candidate.Name == "" || candidate.Brand == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and brand are required")
		return
	}
	if candidate.Source == "" {
		candidate.Source = "classifier"
	}

	stored, err := UpsertProduct(ctx, candidate)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upsert product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, stored)
}
