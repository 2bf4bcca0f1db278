package models

import "time"

// Product is a catalog entry. Rows arrive either from manual creation or
// from the external image classifier via the upsert path; identity is the
// (name, brand) pair, enforced by a unique index.
type Product struct {
	ProductID string    `json:"productid" bson:"productid"`
	Brand     string    `json:"brand" bson:"brand"`
	Name      string    `json:"name" bson:"name"`
	Type      string    `json:"type,omitempty" bson:"type,omitempty"`
	Color     string    `json:"color,omitempty" bson:"color,omitempty"`
	Season    string    `json:"season,omitempty" bson:"season,omitempty"`
	Occasion  string    `json:"occasion,omitempty" bson:"occasion,omitempty"`
	Price     float64   `json:"price,omitempty" bson:"price,omitempty"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
