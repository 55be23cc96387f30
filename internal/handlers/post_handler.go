package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/internal/upload"
	"github.com/whats-cookin/backend/internal/validation"
	"github.com/whats-cookin/backend/services"
)

type PostHandler struct {
	Posts     *services.PostService
	Feed      *services.FeedService
	AssetsDir string
}

// GetFeed handles GET /posts.
func (h *PostHandler) GetFeed(c *fiber.Ctx) error {
	posts, err := h.Feed.GetFeed(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// GetUserPosts handles GET /posts/:userId.
func (h *PostHandler) GetUserPosts(c *fiber.Ctx) error {
	userID, err := objectIDParam(c, "userId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	posts, err := h.Feed.GetUserFeed(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// CreatePost handles POST /posts (multipart). The response is the full
// refreshed feed, which is what the web client renders after posting.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	userID, err := bson.ObjectIDFromHex(req.UserID)
	if err != nil {
		return badRequest(c, "invalid userId")
	}

	picturePath := ""
	if file, err := c.FormFile("picture"); err == nil && file != nil {
		picturePath, err = upload.SavePicture(c, file, h.AssetsDir)
		if err != nil {
			return fail(c, err)
		}
	}

	if _, err := h.Posts.CreatePost(c.Context(), userID, req.PostHeader, req.Description, picturePath); err != nil {
		return fail(c, err)
	}

	feed, err := h.Feed.GetFeed(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feed)
}

// Like handles PATCH /posts/:id/like as an idempotent toggle, not a counter.
func (h *PostHandler) Like(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	userID, err := bson.ObjectIDFromHex(req.UserID)
	if err != nil {
		return badRequest(c, "invalid userId")
	}

	post, err := h.Posts.ToggleLike(c.Context(), postID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}

// Comment handles POST /posts/:id/comment.
func (h *PostHandler) Comment(c *fiber.Ctx) error {
	postID, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	post, err := h.Posts.AddComment(c.Context(), postID, req.Comment)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}
