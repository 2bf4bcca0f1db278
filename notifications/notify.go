package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"vesture/db"
	"vesture/models"
	"vesture/mq"

	"github.com/google/uuid"
)

// BuildMessage renders the human-readable line stored on a notification.
func BuildMessage(actorName, notifType string) string {
	switch notifType {
	case models.NotifFollow:
		return fmt.Sprintf("%s started following you", actorName)
	case models.NotifLike:
		return fmt.Sprintf("%s liked your outfit", actorName)
	case models.NotifComment:
		return fmt.Sprintf("%s commented on your outfit", actorName)
	case models.NotifSave:
		return fmt.Sprintf("%s saved your outfit", actorName)
	default:
		return fmt.Sprintf("%s interacted with your profile", actorName)
	}
}

// ShouldNotify reports whether an action by actor on content owned by
// owner warrants a notification. Self-directed actions never do.
func ShouldNotify(actorID, ownerID string) bool {
	return actorID != "" && ownerID != "" && actorID != ownerID
}

// Create persists one notification for the recipient and publishes it to
// the live channel. The caller has already decided the action qualifies;
// a failed write here never rolls back the action that triggered it.
func Create(ctx context.Context, recipientID, actorID, actorName, notifType, relatedID string) {
	if !ShouldNotify(actorID, recipientID) {
		return
	}

	n := models.Notification{
		NotificationID: uuid.NewString(),
		UserID:         recipientID,
		ActorID:        actorID,
		Type:           notifType,
		RelatedID:      relatedID,
		Message:        BuildMessage(actorName, notifType),
		Read:           false,
		CreatedAt:      time.Now(),
	}

	if _, err := db.NotificationsCollection.InsertOne(ctx, n); err != nil {
		log.Printf("notifications: insert failed for %s: %v", recipientID, err)
		return
	}

	mq.EmitNotification(ctx, n)
}
