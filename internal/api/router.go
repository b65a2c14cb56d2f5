package api

import (
	"moneyflow/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func SetupRouter(
	entryHandler *handlers.EntryHandler,
	chatHandler *handlers.ChatHandler,
	userHandler *handlers.UserHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the MoneyFlow API.")
	})

	app.Get("/users", userHandler.List)

	entries := app.Group("/entries")
	entries.Get("", entryHandler.List)
	entries.Post("", entryHandler.Create)
	entries.Get("/:id", entryHandler.Get)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)

	app.Get("/chats", chatHandler.History)
	app.Post("/chat", chatHandler.Ask)

	return app
}
