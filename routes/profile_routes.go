package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func ProfileRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", h.GetProfile)
	profile.Patch("", h.UpdateProfile)
	profile.Delete("", h.DeleteProfile)
}
