// Package client is a typed REST client for the What's Cookin' API, used
// by the command-line client together with appstate.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/model"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken sets the bearer token attached to authenticated requests.
func (c *Client) SetToken(token string) { c.token = token }

// APIError is a non-2xx response with the server's message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest, picturePath string) (*model.User, error) {
	fields := map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"password":  req.Password,
		"bio":       req.Bio,
	}
	var user model.User
	if err := c.postMultipart(ctx, "/auth/register", fields, picturePath, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login",
		dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.AuthToken
	return &resp, nil
}

func (c *Client) User(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Friends(ctx context.Context, id string) ([]dto.FriendSummary, error) {
	var friends []dto.FriendSummary
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+id+"/friends", nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (c *Client) ToggleFriend(ctx context.Context, id, friendID string) ([]dto.FriendSummary, error) {
	var friends []dto.FriendSummary
	if err := c.doJSON(ctx, http.MethodPatch, "/users/"+id+"/"+friendID, nil, &friends); err != nil {
		return nil, err
	}
	return friends, nil
}

func (c *Client) Feed(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.doJSON(ctx, http.MethodGet, "/posts/", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) UserFeed(ctx context.Context, userID string) ([]model.Post, error) {
	var posts []model.Post
	if err := c.doJSON(ctx, http.MethodGet, "/posts/"+userID, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost uploads a new post and returns the refreshed feed.
func (c *Client) CreatePost(ctx context.Context, userID, header, description, picturePath string) ([]model.Post, error) {
	fields := map[string]string{
		"userId":      userID,
		"postHeader":  header,
		"description": description,
	}
	var posts []model.Post
	if err := c.postMultipart(ctx, "/posts/", fields, picturePath, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) LikePost(ctx context.Context, postID, userID string) (*model.Post, error) {
	var post model.Post
	err := c.doJSON(ctx, http.MethodPatch, "/posts/"+postID+"/like",
		dto.LikeRequest{UserID: userID}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) AddComment(ctx context.Context, postID, comment string) (*model.Post, error) {
	var post model.Post
	err := c.doJSON(ctx, http.MethodPost, "/posts/"+postID+"/comment",
		dto.CommentRequest{Comment: comment}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, picturePath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if picturePath != "" {
		f, err := os.Open(picturePath)
		if err != nil {
			return err
		}
		defer f.Close()
		part, err := w.CreateFormFile("picture", filepath.Base(picturePath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var body dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{Status: resp.StatusCode, Message: body.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
