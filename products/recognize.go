package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"vesture/models"
	"vesture/utils"

	"github.com/julienschmidt/httprouter"
)

// Recognize accepts a multipart image, sends it to the external
// classifier, upserts every returned candidate into the catalog, and
// responds with the stored products.
func Recognize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if recognizer == nil || !recognizer.Enabled() {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Image recognition is not configured")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	candidates, err := recognizer.Recognize(ctx, utils.SanitizeFilename(header.Filename), file)
	if err != nil {
		log.Printf("recognize: classifier error: %v", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Recognition failed")
		return
	}

	stored := []models.Product{}
	for _, c := range candidates {
		if c.Name == "" || c.Brand == "" {
			continue
		}
		product, err := UpsertProduct(ctx, models.Product{
			Brand:  c.Brand,
			Name:   c.Name,
			Type:   c.Type,
			Color:  c.Color,
			Price:  c.Price,
			Link:   c.Link,
			Image:  c.Image,
			Source: "classifier",
		})
		if err != nil {
			log.Printf("recognize: upsert failed for %s/%s: %v", c.Brand, c.Name, err)
			continue
		}
		stored = append(stored, *product)
	}

	utils.RespondWithJSON(w, http.StatusOK, stored)
}
