package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/internal/storetest"
	"github.com/whats-cookin/backend/model"
)

func twoUsers(store *storetest.UserStore) (a, b bson.ObjectID) {
	a = store.Add(model.User{FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com", PicturePath: "a.png"})
	b = store.Add(model.User{FirstName: "Bob", LastName: "Byrne", Email: "b@x.com", PicturePath: "b.png"})
	return a, b
}

func TestToggleFriend_Symmetric(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, b := twoUsers(store)
	svc := NewFriendService(store, PassthroughTxn)

	friends, err := svc.ToggleFriend(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.Equal(t, b, friends[0].ID)
	require.Equal(t, "Bob", friends[0].FirstName)

	// both sides present after one toggle
	require.Equal(t, []bson.ObjectID{b}, store.FriendsOf(a))
	require.Equal(t, []bson.ObjectID{a}, store.FriendsOf(b))
}

func TestToggleFriend_Involution(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, b := twoUsers(store)
	svc := NewFriendService(store, PassthroughTxn)

	_, err := svc.ToggleFriend(context.Background(), a, b)
	require.NoError(t, err)
	friends, err := svc.ToggleFriend(context.Background(), a, b)
	require.NoError(t, err)

	require.Empty(t, friends)
	require.Empty(t, store.FriendsOf(a))
	require.Empty(t, store.FriendsOf(b))
}

// Unfriending removes only the one relationship; other friendships on the
// removed side stay intact.
func TestToggleFriend_UnfriendKeepsOtherFriends(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, b := twoUsers(store)
	c := store.Add(model.User{FirstName: "Cleo", LastName: "Cook", Email: "c@x.com"})
	svc := NewFriendService(store, PassthroughTxn)

	ctx := context.Background()
	_, err := svc.ToggleFriend(ctx, a, b)
	require.NoError(t, err)
	_, err = svc.ToggleFriend(ctx, b, c)
	require.NoError(t, err)

	// a unfriends b; b must still be friends with c
	_, err = svc.ToggleFriend(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, []bson.ObjectID{c}, store.FriendsOf(b))
	require.Equal(t, []bson.ObjectID{b}, store.FriendsOf(c))
}

func TestToggleFriend_SelfRejected(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, _ := twoUsers(store)
	svc := NewFriendService(store, PassthroughTxn)

	_, err := svc.ToggleFriend(context.Background(), a, a)
	require.ErrorIs(t, err, ErrSelfFriend)
	require.Empty(t, store.FriendsOf(a))
}

func TestToggleFriend_UnknownUsers(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, _ := twoUsers(store)
	svc := NewFriendService(store, PassthroughTxn)

	_, err := svc.ToggleFriend(context.Background(), bson.NewObjectID(), a)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ToggleFriend(context.Background(), a, bson.NewObjectID())
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Empty(t, store.FriendsOf(a))
}

func TestListFriends_OrderAndProjection(t *testing.T) {
	t.Parallel()
	store := storetest.NewUserStore()
	a, b := twoUsers(store)
	c := store.Add(model.User{FirstName: "Cleo", LastName: "Cook", Email: "c@x.com", PicturePath: "c.png"})
	svc := NewFriendService(store, PassthroughTxn)

	ctx := context.Background()
	_, err := svc.ToggleFriend(ctx, a, b)
	require.NoError(t, err)
	_, err = svc.ToggleFriend(ctx, a, c)
	require.NoError(t, err)

	friends, err := svc.ListFriends(ctx, a)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	require.Equal(t, b, friends[0].ID)
	require.Equal(t, c, friends[1].ID)
	require.Equal(t, "c.png", friends[1].PicturePath)
}

func TestListFriends_UnknownUser(t *testing.T) {
	t.Parallel()
	svc := NewFriendService(storetest.NewUserStore(), PassthroughTxn)

	_, err := svc.ListFriends(context.Background(), bson.NewObjectID())
	require.ErrorIs(t, err, ErrUserNotFound)
}
