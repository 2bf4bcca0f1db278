package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"vesture/classifier"
	"vesture/db"
	"vesture/models"
	"vesture/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var recognizer *classifier.Client

// Init hands the package its classifier client. Called once from main.
func Init(c *classifier.Client) {
	recognizer = c
}

// CreateProduct inserts a manually authored catalog entry.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if product.Name == "" || product.Brand == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and brand are required")
		return
	}

	product.ProductID = uuid.NewString()
	product.Source = "manual"
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "Product already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// GetProducts lists catalog entries with optional brand/type/color
// filters.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	for _, key := range []string{"brand", "type", "color", "season", "occasion"} {
		if v := r.URL.Query().Get(key); v != "" {
			filter[key] = v
		}
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(100)
	cursor, err := db.ProductsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	defer cursor.Close(ctx)

	list := []models.Product{}
	if err := cursor.All(ctx, &list); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode products")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var body struct {
		Type     *string   `json:"type"`
		Color    *string   `json:"color"`
		Season   *string   `json:"season"`
		Occasion *string   `json:"occasion"`
		Price    *float64  `json:"price"`
		Link     *string   `json:"link"`
		Image    *string   `json:"image"`
		Tags     *[]string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set := bson.M{"updated_at": time.Now()}
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
	if body.Price != nil {
		set["price"] = *body.Price
	}
	if body.Link != nil {
		set["link"] = *body.Link
	}
	if body.Image != nil {
		set["image"] = *body.Image
	}
	if body.Tags != nil {
		set["tags"] = *body.Tags
	}

	res, err := db.ProductsCollection.UpdateOne(ctx, bson.M{"productid": ps.ByName("id")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	var product models.Product
	if err := db.ProductsCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Fetch failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
