package profile

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
)

// GetUser returns the public profile for :id. When the caller is
// authenticated, is_following reflects their relationship to the
// profile.
func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("id")

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := models.UserProfileResponse{
		UserID:         user.UserID,
		Username:       user.Username,
		Bio:            user.Bio,
		ProfilePhoto:   user.ProfilePhoto,
		Website:        user.Website,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
	}
	if callerID, ok := r.Context().Value(globals.UserIDKey).(string); ok && callerID != "" {
		resp.IsFollowing = utils.Contains(user.Followers, callerID)
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateUser edits the caller's own profile fields.
func UpdateUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	callerID, _ := r.Context().Value(globals.UserIDKey).(string)
	userID := ps.ByName("id")
	if callerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var body struct {
		Username     *string `json:"username"`
		Bio          *string `json:"bio"`
		ProfilePhoto *string `json:"profile_photo"`
		Website      *string `json:"website"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Username != nil {
		if *body.Username == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Username cannot be empty")
			return
		}
		set["username"] = *body.Username
	}
	if body.Bio != nil {
		set["bio"] = *body.Bio
	}
	if body.ProfilePhoto != nil {
		set["profile_photo"] = *body.ProfilePhoto
	}
	if body.Website != nil {
		set["website"] = *body.Website
	}

	res := db.UserCollection.FindOneAndUpdate(ctx, bson.M{"userid": userID}, bson.M{"$set": set})
	if res.Err() != nil {
		if res.Err() == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// DeleteUser permanently removes the caller's account and their owned
// documents. The cascade is best-effort, document by document.
func DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	callerID, _ := r.Context().Value(globals.UserIDKey).(string)
	userID := ps.ByName("id")
	if callerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	res, err := db.UserCollection.DeleteOne(ctx, bson.M{"userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	for _, coll := range []*mongo.Collection{
		db.ClosetCollection, db.PostsCollection, db.WishlistCollection, db.NotificationsCollection,
	} {
		if _, err := coll.DeleteMany(ctx, bson.M{"userid": userID}); err != nil {
			log.Printf("cascade delete for %s failed: %v", userID, err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
