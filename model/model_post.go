package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is a food post. The author's name and picture are snapshotted at
// creation time and are not refreshed when the profile changes later.
// Likes is a set encoded as a map of user id hex -> true.
type Post struct {
	ID              bson.ObjectID   `json:"_id"             bson:"_id,omitempty"`
	UserID          bson.ObjectID   `json:"userId"          bson:"user_id"`
	FirstName       string          `json:"firstName"       bson:"first_name"`
	LastName        string          `json:"lastName"        bson:"last_name"`
	PostHeader      string          `json:"postHeader"      bson:"post_header"`
	Description     string          `json:"description"     bson:"description"`
	PicturePath     string          `json:"picturePath"     bson:"picture_path"`
	UserPicturePath string          `json:"userPicturePath" bson:"user_picture_path"`
	Likes           map[string]bool `json:"likes"           bson:"likes"`
	Comments        []string        `json:"comments"        bson:"comments"`
	CreatedAt       time.Time       `json:"createdAt"       bson:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt"       bson:"updated_at"`
}

// LikedBy reports whether the user is in the like set.
func (p *Post) LikedBy(userID bson.ObjectID) bool {
	return p.Likes[userID.Hex()]
}
