package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. Friends holds the ids of mutual
// connections; the friend service keeps both sides in sync.
type User struct {
	ID          bson.ObjectID   `json:"_id"         bson:"_id,omitempty"`
	FirstName   string          `json:"firstName"   bson:"first_name"`
	LastName    string          `json:"lastName"    bson:"last_name"`
	Email       string          `json:"email"       bson:"email"`
	Password    string          `json:"-"           bson:"password"`
	PicturePath string          `json:"picturePath" bson:"picture_path"`
	Bio         string          `json:"bio"         bson:"bio"`
	Friends     []bson.ObjectID `json:"friends"     bson:"friends"`
	CreatedAt   time.Time       `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updated_at"`
}

// HasFriend reports whether id is already in the friend list.
func (u *User) HasFriend(id bson.ObjectID) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}
