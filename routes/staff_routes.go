package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func StaffRoutes(app *fiber.App, h *handlers.Handler) {
	staff := app.Group("/api/v1/staff", middleware.Protected(), middleware.StaffRequired())

	staff.Get("/tutors/:tutorId/verify", h.VerifyTutor)
	staff.Get("/talents/:talentId/verify", h.VerifyTalent)
	staff.Get("/talents/:talentId/soldout", h.ToggleSoldout)
}
