package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/whats-cookin/backend/dto"
	"github.com/whats-cookin/backend/internal/upload"
	"github.com/whats-cookin/backend/internal/validation"
	"github.com/whats-cookin/backend/services"
)

type AuthHandler struct {
	Auth      *services.AuthService
	AssetsDir string
}

// Register handles POST /auth/register (multipart form with an optional
// picture file).
//
//	@Summary  Register a new user
//	@Accept   mpfd
//	@Produce  json
//	@Success  201 {object} model.User
//	@Failure  409 {object} dto.ErrorResponse
//	@Router   /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	// picture is optional; a missing file is not an error
	picturePath := ""
	if file, err := c.FormFile("picture"); err == nil && file != nil {
		picturePath, err = upload.SavePicture(c, file, h.AssetsDir)
		if err != nil {
			return fail(c, err)
		}
	}

	user, err := h.Auth.Register(c.Context(), req, picturePath)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /auth/login.
//
//	@Summary  Log in and receive a bearer token
//	@Accept   json
//	@Produce  json
//	@Success  200 {object} dto.LoginResponse
//	@Failure  403 {object} dto.ErrorResponse
//	@Failure  404 {object} dto.ErrorResponse
//	@Router   /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validation.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	token, user, err := h.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.LoginResponse{AuthToken: token, User: *user})
}
