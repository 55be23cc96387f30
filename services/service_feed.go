package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/model"
)

// FeedService composes the home feed and per-user feeds.
type FeedService struct {
	posts PostStore
}

func NewFeedService(posts PostStore) *FeedService {
	return &FeedService{posts: posts}
}

// GetFeed returns every post, most recent first.
func (s *FeedService) GetFeed(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return newestFirst(posts), nil
}

// GetUserFeed returns the user's posts, most recent first.
func (s *FeedService) GetUserFeed(ctx context.Context, userID bson.ObjectID) ([]model.Post, error) {
	posts, err := s.posts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newestFirst(posts), nil
}

// newestFirst reverses the store's natural insertion order into display
// order without mutating the input.
func newestFirst(posts []model.Post) []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		out[len(posts)-1-i] = p
	}
	return out
}
