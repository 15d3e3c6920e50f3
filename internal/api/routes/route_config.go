package routes

import (
	"Inventory-API/internal/api/handlers"
	"Inventory-API/internal/middleware"
	"Inventory-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	AuthHandler handlers.AuthHandler
	ItemHandler handlers.ItemHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Items()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/signup", c.AuthHandler.Signup)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Delete("", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.DeleteAccount)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/item", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("", c.ItemHandler.InsertItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:seq", c.ItemHandler.GetItem)
	items.Post("/:seq/image", c.ItemHandler.AttachImage)
	items.Post("/:seq", c.ItemHandler.UpdateItem)
	items.Delete("/:seq", c.ItemHandler.DeleteItem)
}
