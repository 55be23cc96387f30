// Package appstate is the client-side session container: current user,
// auth token, theme mode and the cached post feed. Mutation goes through
// the named entry points below, mirroring the reducer actions of the
// original web client, so callers never poke at shared fields directly.
package appstate

import (
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/model"
)

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

type State struct {
	mu    sync.Mutex
	mode  Mode
	user  *model.User
	token string
	posts []model.Post
}

func New() *State {
	return &State{mode: ModeLight}
}

// ToggleMode flips between light and dark.
func (s *State) ToggleMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeLight {
		s.mode = ModeDark
	} else {
		s.mode = ModeLight
	}
}

// SetLogin stores the authenticated user and token.
func (s *State) SetLogin(user model.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
}

// SetLogout clears the session. The theme and cached posts survive.
func (s *State) SetLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// SetFriends replaces the logged-in user's friend list. A no-op when
// nobody is logged in.
func (s *State) SetFriends(friends []bson.ObjectID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.Friends = friends
	}
}

// SetPosts replaces the cached feed.
func (s *State) SetPosts(posts []model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
}

// SetPost replaces the cached copy of one post (after a like or comment),
// keeping feed order intact. Unknown posts are ignored.
func (s *State) SetPost(post model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return
		}
	}
}

func (s *State) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// User returns a copy of the current user, or nil when logged out.
func (s *State) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Posts returns a copy of the cached feed.
func (s *State) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// LoggedIn reports whether a user session is active.
func (s *State) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}
