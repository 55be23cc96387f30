package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert stores a new user. dup is true when the unique email index
// rejected the write (code 11000).
func (r *UserRepository) Insert(ctx context.Context, u *model.User) (dup bool, err error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Friends == nil {
		u.Friends = []bson.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, u)
	if err == nil {
		u.ID = res.InsertedID.(bson.ObjectID)
		return false, nil
	}
	if IsDuplicateKey(err) {
		return true, nil
	}
	return false, err
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindSummaries resolves ids to friend summaries, preserving the order of
// the input list (the friend list order is part of the response contract).
func (r *UserRepository) FindSummaries(ctx context.Context, ids []bson.ObjectID) ([]dto.FriendSummary, error) {
	if len(ids) == 0 {
		return []dto.FriendSummary{}, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	byID := make(map[bson.ObjectID]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]dto.FriendSummary, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			continue // dangling friend id, skip rather than fail the listing
		}
		out = append(out, dto.FriendSummary{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			PicturePath: u.PicturePath,
		})
	}
	return out, nil
}

// AddFriend and RemoveFriend edit one side of a relationship. $addToSet and
// $pull keep the list set-like even under a replay.
func (r *UserRepository) AddFriend(ctx context.Context, userID, friendID bson.ObjectID) error {
	return r.updateFriends(ctx, userID, bson.M{"$addToSet": bson.M{"friends": friendID}})
}

func (r *UserRepository) RemoveFriend(ctx context.Context, userID, friendID bson.ObjectID) error {
	return r.updateFriends(ctx, userID, bson.M{"$pull": bson.M{"friends": friendID}})
}

func (r *UserRepository) updateFriends(ctx context.Context, userID bson.ObjectID, update bson.M) error {
	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique index violation.
func IsDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}
