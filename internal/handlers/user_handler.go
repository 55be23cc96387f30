package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/whats-cookin/backend/services"
)

type UserHandler struct {
	Users   services.UserStore
	Friends *services.FriendService
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.Users.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fail(c, services.ErrUserNotFound)
		}
		return fail(c, err)
	}
	return c.JSON(user)
}

// GetFriends handles GET /users/:id/friends.
func (h *UserHandler) GetFriends(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	friends, err := h.Friends.ListFriends(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(friends)
}

// ToggleFriend handles PATCH /users/:id/:friendId : befriend when absent,
// unfriend when present, both lists edited together.
func (h *UserHandler) ToggleFriend(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	friendID, err := objectIDParam(c, "friendId")
	if err != nil {
		return badRequest(c, err.Error())
	}

	friends, err := h.Friends.ToggleFriend(c.Context(), id, friendID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(friends)
}
