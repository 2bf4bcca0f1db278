package ootd

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

// CreatePost publishes an outfit-of-the-day post. The image is uploaded
// separately through filemgr; the request carries its URL.
func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var post models.OOTDPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if post.ImageURL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	post.PostID = "p" + utils.GenerateName(10)
	post.UserID = userID
	post.Likes = []string{}
	post.Saves = []string{}
	post.Comments = []models.Comment{}
	post.Shares = 0
	post.CreatedAt = time.Now()

	if _, err := db.PostsCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// GetPosts lists posts, optionally filtered by userid, newest first.
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if userID := r.URL.Query().Get("userid"); userID != "" {
		filter["userid"] = userID
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(50)
	cursor, err := db.PostsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	defer cursor.Close(ctx)

	posts := []models.OOTDPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode posts")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var post models.OOTDPost
	if err := db.PostsCollection.FindOne(ctx, bson.M{"postid": ps.ByName("id")}).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// UpdatePost edits caption, tags, mentions or location on the caller's
// own post. Image and interaction state are immutable here.
func UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	postID := ps.ByName("id")

	var existing models.OOTDPost
	if err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}
	if existing.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var body struct {
		Caption  *string   `json:"caption"`
		Tags     *[]string `json:"tags"`
		Mentions *[]string `json:"mentions"`
		Location *string   `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set := bson.M{}
	if body.Caption != nil {
		set["caption"] = *body.Caption
	}
	if body.Tags != nil {
		set["tags"] = *body.Tags
	}
	if body.Mentions != nil {
		set["mentions"] = *body.Mentions
	}
	if body.Location != nil {
		set["location"] = *body.Location
	}
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	if _, err := db.PostsCollection.UpdateOne(ctx, bson.M{"postid": postID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	if err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&existing); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Fetch failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, existing)
}

func DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	postID := ps.ByName("id")

	var existing models.OOTDPost
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.PostsCollection.DeleteOne(ctx, bson.M{"postid": postID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
