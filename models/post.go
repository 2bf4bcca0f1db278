package models

import "time"

// OOTDPost is an outfit-of-the-day post. Likes and Saves hold user ids
// with set semantics: a user id appears at most once in either list.
type OOTDPost struct {
	PostID    string    `json:"postid" bson:"postid"`
	UserID    string    `json:"userid" bson:"userid"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Thumbnail string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Caption   string    `json:"caption,omitempty" bson:"caption,omitempty"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Likes     []string  `json:"likes,omitempty" bson:"likes,omitempty"`
	Saves     []string  `json:"saves,omitempty" bson:"saves,omitempty"`
	Comments  []Comment `json:"comments,omitempty" bson:"comments,omitempty"`
	Mentions  []string  `json:"mentions,omitempty" bson:"mentions,omitempty"`
	Shares    int       `json:"shares" bson:"shares"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Comment is embedded in a post, ordered by append time. Comments are
// never edited or removed once written.
type Comment struct {
	CommentID string    `json:"commentid" bson:"commentid"`
	UserID    string    `json:"userid" bson:"userid"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// PostCounts is the payload for the counts endpoint.
type PostCounts struct {
	Likes    int `json:"likes"`
	Saves    int `json:"saves"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}
