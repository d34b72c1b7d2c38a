package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/handlers"
	"github.com/gorimarket/talent-api/middleware"
)

func RegistrationRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1", middleware.Protected())

	api.Post("/locations/:locationId/registrations", h.CreateRegistration)
	api.Get("/registrations/me", h.MyRegistrations)
	api.Get("/registrations/me/enrolled", h.MyEnrolledTalents)
	api.Get("/applicants/me", h.MyApplicants)
	api.Get("/registrations/:registrationId/verify", h.VerifyRegistration)
}
