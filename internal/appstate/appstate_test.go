package appstate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/model"
)

func TestToggleMode(t *testing.T) {
	t.Parallel()
	s := New()

	require.Equal(t, ModeLight, s.Mode())
	s.ToggleMode()
	require.Equal(t, ModeDark, s.Mode())
	s.ToggleMode()
	require.Equal(t, ModeLight, s.Mode())
}

func TestLoginLogout(t *testing.T) {
	t.Parallel()
	s := New()
	require.False(t, s.LoggedIn())

	user := model.User{ID: bson.NewObjectID(), FirstName: "Ada"}
	s.SetLogin(user, "tok")
	require.True(t, s.LoggedIn())
	require.Equal(t, "tok", s.Token())
	require.Equal(t, user.ID, s.User().ID)

	s.SetLogout()
	require.False(t, s.LoggedIn())
	require.Nil(t, s.User())
	require.Empty(t, s.Token())
}

func TestSetFriends(t *testing.T) {
	t.Parallel()
	s := New()
	friends := []bson.ObjectID{bson.NewObjectID()}

	// no-op while logged out
	s.SetFriends(friends)
	require.Nil(t, s.User())

	s.SetLogin(model.User{ID: bson.NewObjectID()}, "tok")
	s.SetFriends(friends)
	require.Equal(t, friends, s.User().Friends)
}

func TestSetPost_ReplacesInPlace(t *testing.T) {
	t.Parallel()
	s := New()

	p1 := model.Post{ID: bson.NewObjectID(), PostHeader: "one"}
	p2 := model.Post{ID: bson.NewObjectID(), PostHeader: "two"}
	s.SetPosts([]model.Post{p1, p2})

	updated := p1
	updated.Comments = []string{"yum"}
	s.SetPost(updated)

	posts := s.Posts()
	require.Equal(t, []string{"yum"}, posts[0].Comments)
	require.Equal(t, p2.ID, posts[1].ID)

	// unknown post is ignored
	s.SetPost(model.Post{ID: bson.NewObjectID()})
	require.Len(t, s.Posts(), 2)
}

func TestUserReturnsCopy(t *testing.T) {
	t.Parallel()
	s := New()
	s.SetLogin(model.User{ID: bson.NewObjectID(), FirstName: "Ada"}, "tok")

	u := s.User()
	u.FirstName = "mutated"
	require.Equal(t, "Ada", s.User().FirstName)
}
