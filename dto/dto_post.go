package dto

// CreatePostRequest carries the multipart form fields of POST /posts.
type CreatePostRequest struct {
	UserID      string `form:"userId"      json:"userId"      validate:"required"`
	PostHeader  string `form:"postHeader"  json:"postHeader"  validate:"required"`
	Description string `form:"description" json:"description"`
}

type LikeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type CommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}
