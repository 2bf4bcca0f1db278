package models

import "time"

// ClosetItem is a garment a user owns. When ProductID is set the
// descriptive fields were copied from that product at creation time.
type ClosetItem struct {
	ItemID    string    `json:"itemid" bson:"itemid"`
	UserID    string    `json:"userid" bson:"userid"`
	ProductID string    `json:"productid,omitempty" bson:"productid,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Type      string    `json:"type,omitempty" bson:"type,omitempty"`
	Color     string    `json:"color,omitempty" bson:"color,omitempty"`
	Season    string    `json:"season,omitempty" bson:"season,omitempty"`
	Occasion  string    `json:"occasion,omitempty" bson:"occasion,omitempty"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
