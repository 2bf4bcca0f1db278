package closet

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vesture/db"
	"vesture/globals"
	"vesture/models"
	"vesture/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExportLookbook renders the caller's closet as a PDF, one line per
// garment, for sharing outside the app.
func ExportLookbook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
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

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Closet Lookbook")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	if len(items) == 0 {
		pdf.Cell(0, 8, "No items yet.")
	}
	for _, item := range items {
		line := item.Name
		if item.Type != "" {
			line += " · " + item.Type
		}
		if item.Color != "" {
			line += " · " + item.Color
		}
		if item.Season != "" {
			line += " · " + item.Season
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=lookbook-%s.pdf", userID))
	if err := pdf.Output(w); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render PDF")
	}
}
