package models

import "time"

type Reply struct {
	ReplyID   string    `json:"replyid" bson:"replyid"`
	UserID    string    `json:"userid" bson:"userid"`
	Content   string    `json:"content" bson:"content"`
	Likes     []string  `json:"likes" bson:"likes"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentid" bson:"commentid"`
	UserID    string    `json:"userid" bson:"userid"`
	Content   string    `json:"content" bson:"content"`
	Likes     []string  `json:"likes" bson:"likes"`
	Replies   []Reply   `json:"replies" bson:"replies"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Post struct {
	PostID    string    `json:"postid" bson:"postid"`
	UserID    string    `json:"userid" bson:"userid"`
	Username  string    `json:"username,omitempty" bson:"username,omitempty"`
	Content   string    `json:"content" bson:"content"`
	Images    []string  `json:"images" bson:"images"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	Tags      []string  `json:"tags" bson:"tags"`
	Likes     []string  `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	Shares    int       `json:"shares" bson:"shares"`
	GroupID   string    `json:"groupid,omitempty" bson:"groupid,omitempty"`
	IsActive  bool      `json:"isActive" bson:"is_active"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
