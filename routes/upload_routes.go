package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	api.Get("/uploads/signature", handlers.GenerateUploadSignature)
}
