package config

import (
	"context"
	"os"
	"time"

	"tastebook/internal/api/handlers"
	"tastebook/internal/api/routes"
	"tastebook/internal/middleware"
	"tastebook/internal/utils"
	"tastebook/pkg/bookmark"
	"tastebook/pkg/jwt"
	"tastebook/pkg/recipe"
	"tastebook/pkg/review"
	"tastebook/pkg/search"
	"tastebook/pkg/storage"
	"tastebook/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(db *storage.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	bookmarkRepository := bookmark.NewBookmarkRepository(db)
	userRepository := user.NewUserRepository(db)

	// Hydrate collections before serving. Reviews load after recipes so
	// the aggregate recompute sees both sides.
	ctx := context.Background()
	if err := recipeRepository.Load(ctx); err != nil {
		return nil, err
	}
	if err := reviewRepository.Load(ctx); err != nil {
		return nil, err
	}
	if err := bookmarkRepository.Load(ctx); err != nil {
		return nil, err
	}
	if err := userRepository.Load(ctx); err != nil {
		return nil, err
	}

	// Service
	jwtService := jwt.NewJWTService()
	bookmarkService := bookmark.NewBookmarkService(bookmarkRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, reviewRepository, bookmarkRepository)
	reviewService := review.NewReviewService(reviewRepository, db)
	searchService := search.NewSearchService(recipeRepository)
	userService := user.NewUserService(userRepository, jwtService, bookmarkService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		SearchHandler:   searchHandler,
		ReviewHandler:   reviewHandler,
		BookmarkHandler: bookmarkHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
