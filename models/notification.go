package models

import "time"

// Notification types.
const (
	NotifFollow  = "follow"
	NotifLike    = "like"
	NotifComment = "comment"
	NotifSave    = "save"
)

// Notification is created as a side effect of another user's action and
// is never self-targeted.
type Notification struct {
	NotificationID string    `json:"notificationid" bson:"notificationid"`
	UserID         string    `json:"userid" bson:"userid"` // recipient
	ActorID        string    `json:"actorid" bson:"actorid"`
	Type           string    `json:"type" bson:"type"`
	RelatedID      string    `json:"relatedid,omitempty" bson:"relatedid,omitempty"`
	Message        string    `json:"message" bson:"message"`
	Read           bool      `json:"read" bson:"read"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
