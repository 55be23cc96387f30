package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/whats-cookin/backend/model"
)

// PostService covers post creation and interactions (likes, comments).
type PostService struct {
	posts PostStore
	users UserStore
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// CreatePost stores a new post, snapshotting the author's current name and
// picture. Header and description come from the request; the like set and
// comment list start empty.
func (s *PostService) CreatePost(ctx context.Context, userID bson.ObjectID, header, description, picturePath string) (*model.Post, error) {
	author, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post := &model.Post{
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		UserPicturePath: author.PicturePath,
		PostHeader:      header,
		Description:     description,
		PicturePath:     picturePath,
		Likes:           map[string]bool{},
		Comments:        []string{},
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLike flips the user's membership in the post's like set. Invoking
// it twice restores the original state.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID bson.ObjectID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	likes := toggleLikeSet(post.Likes, userID.Hex())
	updated, err := s.posts.ReplaceLikes(ctx, postID, likes)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return updated, nil
}

// AddComment appends a comment to the post. Blank comments are rejected
// here, not only at the client.
func (s *PostService) AddComment(ctx context.Context, postID bson.ObjectID, comment string) (*model.Post, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, ErrEmptyComment
	}

	updated, err := s.posts.PushComment(ctx, postID, comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return updated, nil
}

// toggleLikeSet returns a copy of likes with userID's membership flipped.
// Only present members are kept, so the map stays a set.
func toggleLikeSet(likes map[string]bool, userID string) map[string]bool {
	out := make(map[string]bool, len(likes)+1)
	for id, present := range likes {
		if present {
			out[id] = true
		}
	}
	if out[userID] {
		delete(out, userID)
	} else {
		out[userID] = true
	}
	return out
}
