package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

func TestLogin_StoresToken(t *testing.T) {
	t.Parallel()
	user := model.User{ID: bson.NewObjectID(), FirstName: "Ada", Email: "a@x.com"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@x.com", req.Email)

		json.NewEncoder(w).Encode(dto.LoginResponse{AuthToken: "tok-1", User: user})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "a@x.com", "Password1")
	require.NoError(t, err)
	require.Equal(t, "tok-1", resp.AuthToken)
	require.Equal(t, user.ID, resp.User.ID)
	require.Equal(t, "tok-1", c.token)
}

func TestAuthenticatedRequestsCarryBearer(t *testing.T) {
	t.Parallel()
	post := model.Post{ID: bson.NewObjectID(), PostHeader: "Ramen night"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/posts/":
			json.NewEncoder(w).Encode([]model.Post{post})
		case r.Method == http.MethodPatch:
			json.NewEncoder(w).Encode(post)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-1")

	feed, err := c.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, post.ID, feed[0].ID)

	liked, err := c.LikePost(context.Background(), post.ID.Hex(), bson.NewObjectID().Hex())
	require.NoError(t, err)
	require.Equal(t, post.ID, liked.ID)
}

func TestAPIErrorSurfacesServerMessage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "user not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.User(context.Background(), bson.NewObjectID().Hex())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "user not found", apiErr.Message)
}
