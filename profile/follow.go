package profile

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"vesture/db"
	"vesture/globals"
	"vesture/models"
	"vesture/notifications"
	"vesture/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
	ErrUserNotFound     = errors.New("user not found")
)

// ApplyFollow records actor→target on both in-memory documents. Counts
// are recomputed from the list lengths so they never drift or go
// negative.
func ApplyFollow(actor, target *models.User) error {
	if actor.UserID == target.UserID {
		return ErrSelfFollow
	}
	if utils.Contains(actor.Following, target.UserID) {
		return ErrAlreadyFollowing
	}

	actor.Following = append(actor.Following, target.UserID)
	actor.FollowingCount = len(actor.Following)
	target.Followers = append(target.Followers, actor.UserID)
	target.FollowersCount = len(target.Followers)
	return nil
}

// ApplyUnfollow removes actor→target from both in-memory documents.
func ApplyUnfollow(actor, target *models.User) error {
	if actor.UserID == target.UserID {
		return ErrSelfFollow
	}
	if !utils.Contains(actor.Following, target.UserID) {
		return ErrNotFollowing
	}

	actor.Following = removeString(actor.Following, target.UserID)
	actor.FollowingCount = len(actor.Following)
	target.Followers = removeString(target.Followers, actor.UserID)
	target.FollowersCount = len(target.Followers)
	return nil
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// UpdateFollowRelationship loads both parties, applies the change, and
// writes both documents back. The two writes are sequential, not
// transactional; a crash between them leaves one side recorded.
func UpdateFollowRelationship(ctx context.Context, actorID, targetID, action string) (*models.User, error) {
	var actor, target models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": actorID}).Decode(&actor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": targetID}).Decode(&target); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var err error
	if action == "follow" {
		err = ApplyFollow(&actor, &target)
	} else {
		err = ApplyUnfollow(&actor, &target)
	}
	if err != nil {
		return nil, err
	}

	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": actor.UserID},
		bson.M{"$set": bson.M{"following": actor.Following, "followingcount": actor.FollowingCount}},
	)
	if err != nil {
		return nil, err
	}
	_, err = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": target.UserID},
		bson.M{"$set": bson.M{"followers": target.Followers, "followerscount": target.FollowersCount}},
	)
	if err != nil {
		return nil, err
	}

	return &actor, nil
}

func handleFollowAction(w http.ResponseWriter, r *http.Request, ps httprouter.Params, action string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	actorID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || actorID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	targetID := ps.ByName("id")

	actor, err := UpdateFollowRelationship(ctx, actorID, targetID, action)
	switch {
	case err == nil:
	case errors.Is(err, ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, ErrSelfFollow), errors.Is(err, ErrAlreadyFollowing), errors.Is(err, ErrNotFollowing):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	default:
		log.Printf("Error updating follow relationship: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update follow relationship")
		return
	}

	if action == "follow" {
		notifications.Create(ctx, targetID, actor.UserID, actor.Username, models.NotifFollow, actor.UserID)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"ok":          true,
		"isFollowing": action == "follow",
	})
}

func ToggleFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleFollowAction(w, r, ps, "follow")
}

func ToggleUnFollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handleFollowAction(w, r, ps, "unfollow")
}

// GetFollowers returns the users following :id.
func GetFollowers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listRelated(w, r, ps.ByName("id"), "followers")
}

// GetFollowing returns the users :id follows.
func GetFollowing(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	listRelated(w, r, ps.ByName("id"), "following")
}

func listRelated(w http.ResponseWriter, r *http.Request, userID, field string) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	ids := user.Followers
	if field == "following" {
		ids = user.Following
	}
	if len(ids) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, []models.UserProfileResponse{})
		return
	}

	cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer cursor.Close(ctx)

	related := []models.UserProfileResponse{}
	if err := cursor.All(ctx, &related); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, related)
}
