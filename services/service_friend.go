package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

// FriendService maintains the symmetric friend relation: A lists B exactly
// when B lists A. Both sides of a toggle are written inside a single
// transaction so a half-applied edit can never be observed.
type FriendService struct {
	users UserStore
	txn   Txn
}

func NewFriendService(users UserStore, txn Txn) *FriendService {
	return &FriendService{users: users, txn: txn}
}

// ListFriends resolves the user's friend list to display summaries,
// in list order.
func (s *FriendService) ListFriends(ctx context.Context, userID bson.ObjectID) ([]dto.FriendSummary, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindSummaries(ctx, user.Friends)
}

// ToggleFriend befriends or unfriends, editing both lists. Returns the
// caller's updated friend summaries. Self-friending is rejected.
func (s *FriendService) ToggleFriend(ctx context.Context, userID, friendID bson.ObjectID) ([]dto.FriendSummary, error) {
	if userID == friendID {
		return nil, ErrSelfFriend
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.findUser(ctx, friendID); err != nil {
		return nil, err
	}

	remove := user.HasFriend(friendID)
	err = s.txn(ctx, func(ctx context.Context) error {
		if remove {
			if err := s.users.RemoveFriend(ctx, userID, friendID); err != nil {
				return err
			}
			return s.users.RemoveFriend(ctx, friendID, userID)
		}
		if err := s.users.AddFriend(ctx, userID, friendID); err != nil {
			return err
		}
		return s.users.AddFriend(ctx, friendID, userID)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.ListFriends(ctx, userID)
}

func (s *FriendService) findUser(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
