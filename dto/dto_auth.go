package dto

import "github.com/whats-cookin/backend/model"

// RegisterRequest carries the multipart form fields of POST /auth/register.
// The picture file itself is handled separately by the upload helper.
type RegisterRequest struct {
	FirstName string `form:"firstName" json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `form:"lastName"  json:"lastName"  validate:"required,min=2,max=50"`
	Email     string `form:"email"     json:"email"     validate:"required,email,max=50"`
	Password  string `form:"password"  json:"password"  validate:"required,min=5"`
	Bio       string `form:"bio"       json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse keeps the field names the web client expects.
type LoginResponse struct {
	AuthToken string     `json:"authToken"`
	User      model.User `json:"userStoredInDB"`
}
