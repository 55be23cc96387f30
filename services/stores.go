package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

// UserStore and PostStore are what the services need from the repository
// layer. The mongo repositories satisfy them; tests plug in fakes.

type UserStore interface {
	Insert(ctx context.Context, u *model.User) (dup bool, err error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindSummaries(ctx context.Context, ids []bson.ObjectID) ([]dto.FriendSummary, error)
	AddFriend(ctx context.Context, userID, friendID bson.ObjectID) error
	RemoveFriend(ctx context.Context, userID, friendID bson.ObjectID) error
}

type PostStore interface {
	Insert(ctx context.Context, p *model.Post) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByUser(ctx context.Context, userID bson.ObjectID) ([]model.Post, error)
	ReplaceLikes(ctx context.Context, id bson.ObjectID, likes map[string]bool) (*model.Post, error)
	PushComment(ctx context.Context, id bson.ObjectID, comment string) (*model.Post, error)
}

// Txn runs fn atomically. In production this is a Mongo transaction
// (database.Transaction); tests use a pass-through.
type Txn func(ctx context.Context, fn func(ctx context.Context) error) error

// PassthroughTxn runs fn directly, with no transactional guarantee.
func PassthroughTxn(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
