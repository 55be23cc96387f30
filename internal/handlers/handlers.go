package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/services"
)

// statusForError maps the service error taxonomy onto HTTP status codes:
// validation 400, unauthorized 403, not found 404, duplicate email 409,
// anything else (store failures) 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrSelfFriend),
		errors.Is(err, services.ErrEmptyComment):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPostNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEmail):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(dto.ErrorResponse{Message: err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: msg})
}

// objectIDParam parses a hex ObjectID path parameter.
func objectIDParam(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.NilObjectID, errors.New("invalid " + name)
	}
	return oid, nil
}
