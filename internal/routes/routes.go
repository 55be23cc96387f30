package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/whats-cookin/backend/internal/handlers"
	"github.com/whats-cookin/backend/internal/middleware"
	"github.com/whats-cookin/backend/services"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Auth      *services.AuthService
	Friends   *services.FriendService
	Posts     *services.PostService
	Feed      *services.FeedService
	Users     services.UserStore
	AssetsDir string
}

// Register mounts all HTTP routes in one place, grouped by resource.
func Register(app *fiber.App, d Deps) {
	authHandler := &handlers.AuthHandler{Auth: d.Auth, AssetsDir: d.AssetsDir}
	userHandler := &handlers.UserHandler{Users: d.Users, Friends: d.Friends}
	postHandler := &handlers.PostHandler{Posts: d.Posts, Feed: d.Feed, AssetsDir: d.AssetsDir}

	bearer := middleware.RequireToken(d.Auth)

	// Health check
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	users := app.Group("/users", bearer)
	users.Get("/:id", userHandler.GetUser)
	users.Get("/:id/friends", userHandler.GetFriends)
	users.Patch("/:id/:friendId", userHandler.ToggleFriend)

	posts := app.Group("/posts", bearer)
	posts.Get("/", postHandler.GetFeed)
	posts.Post("/", postHandler.CreatePost)
	posts.Get("/:userId", postHandler.GetUserPosts)
	posts.Patch("/:id/like", postHandler.Like)
	posts.Post("/:id/comment", postHandler.Comment)
}
