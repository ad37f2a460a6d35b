package routes

import (
	"tastebook/internal/api/handlers"
	"tastebook/internal/middleware"
	"tastebook/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	SearchHandler   handlers.SearchHandler
	ReviewHandler   handlers.ReviewHandler
	BookmarkHandler handlers.BookmarkHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Search()
	c.Reviews()
	c.Bookmarks()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		recipes.Get("/random", c.RecipeHandler.GetRandom)
		recipes.Get("/top-rated", c.RecipeHandler.GetTopRated)
		recipes.Get("/recent", c.RecipeHandler.GetRecent)
		recipes.Get("/trending", c.RecipeHandler.GetTrending)
		recipes.Get("/category/:category", c.RecipeHandler.GetByCategory)
		recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
		recipes.Get("/:id/reviews", c.ReviewHandler.GetForRecipe)
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	}
}

func (c *Config) Search() {
	search := c.App.Group("/api/v1/search")
	{
		search.Get("", c.SearchHandler.Search)
		search.Get("/suggest", c.SearchHandler.Suggest)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reviews.Post("", c.ReviewHandler.AddReview)
	}
}

func (c *Config) Bookmarks() {
	folders := c.App.Group("/api/v1/folders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		folders.Post("", c.BookmarkHandler.CreateFolder)
		folders.Get("", c.BookmarkHandler.GetFolders)
		folders.Patch("/:id", c.BookmarkHandler.UpdateFolder)
		folders.Delete("/:id", c.BookmarkHandler.DeleteFolder)
		folders.Get("/:id/bookmarks", c.BookmarkHandler.GetFolderBookmarks)
	}

	bookmarks := c.App.Group("/api/v1/bookmarks", c.Middleware.AuthMiddleware(c.JWTService))
	{
		bookmarks.Post("", c.BookmarkHandler.AddBookmark)
		bookmarks.Patch("/:id", c.BookmarkHandler.UpdateBookmark)
		bookmarks.Delete("/:id", c.BookmarkHandler.RemoveBookmark)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
