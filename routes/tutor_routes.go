package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func TutorRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	tutors := api.Group("/tutors", middleware.Protected())
	tutors.Post("/apply", h.ApplyTutor)
	tutors.Get("/me", h.GetMyTutorProfile)
	tutors.Patch("/me", h.UpdateMyTutorProfile)
}
