package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	PasswordHash  string    `json:"-" bson:"password_hash"`
	Role          []string  `json:"role" bson:"role"`
	Name          string    `json:"name,omitempty" bson:"name,omitempty"`
	Avatar        string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refreshtoken,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refreshexp,omitempty"`
}

// ReportEntry records one (user, post) report; at most one per pair.
type ReportEntry struct {
	PostID     string    `json:"postid" bson:"postid"`
	Reason     string    `json:"reason" bson:"reason"`
	ReportedAt time.Time `json:"reportedAt" bson:"reported_at"`
}

// Prefs holds a user's content preference signals. InterestedTags and
// NotInterestedTags stay disjoint; the write path enforces it.
type Prefs struct {
	UserID            string        `json:"userid" bson:"userid"`
	InterestedTags    []string      `json:"interestedTags" bson:"interested_tags"`
	NotInterestedTags []string      `json:"notInterestedTags" bson:"not_interested_tags"`
	SavedPosts        []string      `json:"savedPosts" bson:"saved_posts"`
	ReportedPosts     []ReportEntry `json:"reportedPosts" bson:"reported_posts"`
}
