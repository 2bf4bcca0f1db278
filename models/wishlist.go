package models

import "time"

type WishlistItem struct {
	WishID    string    `json:"wishid" bson:"wishid"`
	UserID    string    `json:"userid" bson:"userid"`
	ProductID string    `json:"productid" bson:"productid"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`

	// Populated from the products collection on reads, never stored.
	Product *Product `json:"product,omitempty" bson:"-"`
}
