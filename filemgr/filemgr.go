package filemgr

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"vesture/globals"
	"vesture/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var uploadDir string

// Init sets the directory uploaded images land in. Called once from
// main.
func Init(dir string) error {
	uploadDir = dir
	return utils.EnsureDir(dir)
}

const thumbWidth = 320

// UploadImage stores a multipart image under a random name, writes a
// thumbnail next to it, and returns both URLs. Posts and profile
// photos both go through here.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
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

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	name := utils.GenerateName(16)
	fullPath := filepath.Join(uploadDir, name+".jpg")
	thumbPath := filepath.Join(uploadDir, name+"_thumb.jpg")

	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(90)); err != nil {
		log.Printf("filemgr: save failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(80)); err != nil {
		log.Printf("filemgr: thumbnail save failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"url":       fmt.Sprintf("/static/uploads/%s.jpg", name),
		"thumbnail": fmt.Sprintf("/static/uploads/%s_thumb.jpg", name),
	})
}
