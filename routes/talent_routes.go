package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func TalentRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Get("/talents", h.ListTalents)
	api.Get("/talents/:talentId", h.GetTalent)
	api.Get("/talents/:talentId/locations", h.ListLocations)

	authed := api.Group("", middleware.Protected())
	authed.Post("/talents", h.CreateTalent)
	authed.Post("/talents/:talentId/locations", h.CreateLocation)
	authed.Get("/talents/me/list", h.MyTalents)

	wishlist := api.Group("/wishlist", middleware.Protected())
	wishlist.Get("", h.MyWishlist)
	wishlist.Get("/:talentId/toggle", h.ToggleWishlist)
}
