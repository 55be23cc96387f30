// Package storetest provides in-memory UserStore and PostStore
// implementations so service and route tests run without a MongoDB.
package storetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

type UserStore struct {
	mu    sync.Mutex
	users map[bson.ObjectID]*model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[bson.ObjectID]*model.User{}}
}

func (s *UserStore) Insert(_ context.Context, u *model.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return true, nil
		}
	}
	u.ID = bson.NewObjectID()
	cp := *u
	s.users[u.ID] = &cp
	return false, nil
}

func (s *UserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *u
	cp.Friends = append([]bson.ObjectID{}, u.Friends...)
	return &cp, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *UserStore) FindSummaries(_ context.Context, ids []bson.ObjectID) ([]dto.FriendSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []dto.FriendSummary{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, dto.FriendSummary{
				ID:          u.ID,
				FirstName:   u.FirstName,
				LastName:    u.LastName,
				PicturePath: u.PicturePath,
			})
		}
	}
	return out, nil
}

func (s *UserStore) AddFriend(_ context.Context, userID, friendID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, f := range u.Friends {
		if f == friendID {
			return nil
		}
	}
	u.Friends = append(u.Friends, friendID)
	return nil
}

func (s *UserStore) RemoveFriend(_ context.Context, userID, friendID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	kept := u.Friends[:0]
	for _, f := range u.Friends {
		if f != friendID {
			kept = append(kept, f)
		}
	}
	u.Friends = kept
	return nil
}

// Add seeds a user directly, bypassing registration.
func (s *UserStore) Add(u model.User) bson.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if u.Friends == nil {
		u.Friends = []bson.ObjectID{}
	}
	s.users[u.ID] = &u
	return u.ID
}

// FriendsOf returns a copy of the stored friend list for assertions.
func (s *UserStore) FriendsOf(id bson.ObjectID) []bson.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bson.ObjectID{}, s.users[id].Friends...)
}

type PostStore struct {
	mu    sync.Mutex
	posts []*model.Post
}

func NewPostStore() *PostStore { return &PostStore{} }

func (s *PostStore) Insert(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = bson.NewObjectID()
	cp := *p
	s.posts = append(s.posts, &cp)
	return nil
}

func (s *PostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

func (s *PostStore) FindAll(context.Context) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (s *PostStore) FindByUser(_ context.Context, userID bson.ObjectID) ([]model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Post{}
	for _, p := range s.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *PostStore) ReplaceLikes(_ context.Context, id bson.ObjectID, likes map[string]bool) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	p.Likes = likes
	cp := *p
	return &cp, nil
}

func (s *PostStore) PushComment(_ context.Context, id bson.ObjectID, comment string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.locked(id)
	if err != nil {
		return nil, err
	}
	p.Comments = append(p.Comments, comment)
	cp := *p
	return &cp, nil
}

func (s *PostStore) locked(id bson.ObjectID) (*model.Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
