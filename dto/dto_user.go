package dto

import "go.mongodb.org/mongo-driver/v2/bson"

// FriendSummary is the display-ready projection of a friend entry.
type FriendSummary struct {
	ID          bson.ObjectID `json:"_id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	PicturePath string        `json:"picturePath"`
}
