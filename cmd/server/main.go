package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"github.com/whats-cookin/backend/bootstrap"
	"github.com/whats-cookin/backend/configs"
	"github.com/whats-cookin/backend/database"
	_ "github.com/whats-cookin/backend/docs"
	"github.com/whats-cookin/backend/internal/repository"
	"github.com/whats-cookin/backend/internal/routes"
	"github.com/whats-cookin/backend/services"
)

//	@title			What's Cookin' API
//	@version		1.0
//	@description	Food-sharing social network backend.

func main() {
	cfg := configs.Load()

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.DBName)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)

	authService := services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)
	friendService := services.NewFriendService(users, database.Transaction(client))
	postService := services.NewPostService(posts, users)
	feedService := services.NewFeedService(posts)

	app := fiber.New(fiber.Config{
		BodyLimit: 30 * 1024 * 1024, // uploads
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	// uploaded images are served straight from disk
	app.Static("/assets", cfg.AssetsDir)

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		Auth:      authService,
		Friends:   friendService,
		Posts:     postService,
		Feed:      feedService,
		Users:     users,
		AssetsDir: cfg.AssetsDir,
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
