package ootd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vesture/db"
	"vesture/globals"
	"vesture/models"
	"vesture/notifications"
	"vesture/rdx"
	"vesture/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ToggleMember adds or removes an id from a membership set. The second
// return reports whether anything changed: adding an existing member or
// removing an absent one is a no-op.
func ToggleMember(set []string, id string, add bool) ([]string, bool) {
	present := utils.Contains(set, id)
	if add {
		if present {
			return set, false
		}
		return append(set, id), true
	}
	if !present {
		return set, false
	}
	out := make([]string, 0, len(set)-1)
	for _, v := range set {
		if v != id {
			out = append(out, v)
		}
	}
	return out, true
}

// actorName resolves a display name for notification messages, trying
// the redis username cache before the users collection.
func actorName(ctx context.Context, userID string) string {
	if name, err := rdx.RdxGet(fmt.Sprintf("users:%s", userID)); err == nil && name != "" {
		return name
	}
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err == nil {
		return user.Username
	}
	return "Someone"
}

func loadPost(ctx context.Context, postID string) (*models.OOTDPost, error) {
	var post models.OOTDPost
	err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// handleSetAction drives like/unlike/save/unsave. The set write happens
// first; the notification is a best-effort follow-up, never rolled
// back together.
func handleSetAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params, field string, add bool, notifType string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	actorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || actorID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	post, err := loadPost(ctx, ps.ByName("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	set := post.Likes
	if field == "saves" {
		set = post.Saves
	}
	updated, changed := ToggleMember(set, actorID, add)

	if changed {
		_, err = db.PostsCollection.UpdateOne(ctx,
			bson.M{"postid": post.PostID},
			bson.M{"$set": bson.M{field: updated}},
		)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update post")
			return
		}
		if add {
			notifications.Create(ctx, post.UserID, actorID, actorName(ctx, actorID), notifType, post.PostID)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":    true,
		"count": len(updated),
	})
}

func LikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleSetAction(w, r, ps, "likes", true, models.NotifLike)
}

func UnlikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleSetAction(w, r, ps, "likes", false, "")
}

func SavePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleSetAction(w, r, ps, "saves", true, models.NotifSave)
}

func UnsavePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleSetAction(w, r, ps, "saves", false, "")
}

// CommentPost appends an immutable comment with a server-assigned
// timestamp and notifies the post owner.
func CommentPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	actorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || actorID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment cannot be empty")
		return
	}

	post, err := loadPost(ctx, ps.ByName("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	comment := models.Comment{
		CommentID: "cm" + utils.GenerateName(10),
		UserID:    actorID,
		Text:      body.Text,
		CreatedAt: time.Now(),
	}

	_, err = db.PostsCollection.UpdateOne(ctx,
		bson.M{"postid": post.PostID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	notifications.Create(ctx, post.UserID, actorID, actorName(ctx, actorID), models.NotifComment, post.PostID)

	utils.RespondWithJSON(w, http.StatusCreated, comment)
}

// GetCounts returns the interaction tallies for a post.
func GetCounts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, err := loadPost(ctx, ps.ByName("id"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.PostCounts{
		Likes:    len(post.Likes),
		Saves:    len(post.Saves),
		Comments: len(post.Comments),
		Shares:   post.Shares,
	})
}
