package models

import "time"

type User struct {
	UserID       string `json:"userid" bson:"userid"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`

	Bio          string `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePhoto string `json:"profile_photo,omitempty" bson:"profile_photo,omitempty"`
	Website      string `json:"website,omitempty" bson:"website,omitempty"`

	// Counts mirror the list lengths; every follow/unfollow write keeps
	// them in step and clamps at zero.
	FollowersCount int      `json:"followerscount" bson:"followerscount"`
	FollowingCount int      `json:"followingcount" bson:"followingcount"`
	Followers      []string `json:"followers,omitempty" bson:"followers,omitempty"`
	Following      []string `json:"following,omitempty" bson:"following,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin time.Time `json:"last_login" bson:"last_login"`
}

// UserProfileResponse is the public shape returned for profile reads.
type UserProfileResponse struct {
	UserID         string `json:"userid" bson:"userid"`
	Username       string `json:"username" bson:"username"`
	Bio            string `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfilePhoto   string `json:"profile_photo,omitempty" bson:"profile_photo,omitempty"`
	Website        string `json:"website,omitempty" bson:"website,omitempty"`
	FollowersCount int    `json:"followerscount" bson:"followerscount"`
	FollowingCount int    `json:"followingcount" bson:"followingcount"`
	IsFollowing    bool   `json:"is_following" bson:"-"`
}
