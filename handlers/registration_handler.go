package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
	"github.com/gorimarket/talent-api/verify"
)

type CreateRegistrationRequest struct {
	StudentLevel     string `json:"student_level" validate:"required"`
	ExperienceLength string `json:"experience_length"`
	Message          string `json:"message"`
}

// CreateRegistration lets a student apply to a location.
func (h *Handler) CreateRegistration(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	var req CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	locationID, err := uuid.Parse(c.Params("locationId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": messages.LocationNotFound})
	}

	location, err := h.locations.ByID(c.Context(), locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": messages.LocationNotFound})
		}
		h.log.WithError(err).Error("failed to load location")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	dup, msg, err := verify.Duplicates(c.Context(), func(ctx context.Context) (int64, error) {
		return h.registrations.CountByKey(ctx, location.ID, userID)
	})
	if err != nil {
		h.log.WithError(err).Error("failed to run duplicate check")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if dup {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": msg})
	}

	registration := models.Registration{
		LocationID:       location.ID,
		StudentID:        userID,
		StudentLevel:     req.StudentLevel,
		ExperienceLength: req.ExperienceLength,
		Message:          req.Message,
	}
	if err := h.registrations.Create(c.Context(), &registration); err != nil {
		h.log.WithError(err).Error("failed to create registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create registration"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": messages.RegistrationCreated})
}

// MyRegistrations lists the caller's applications still waiting for
// tutor confirmation.
func (h *Handler) MyRegistrations(c *fiber.Ctx) error {
	return h.listRegistrations(c, false)
}

// MyEnrolledTalents lists the caller's confirmed registrations.
func (h *Handler) MyEnrolledTalents(c *fiber.Ctx) error {
	return h.listRegistrations(c, true)
}

func (h *Handler) listRegistrations(c *fiber.Ctx, verified bool) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	registrations, err := h.registrations.ListByStudent(c.Context(), userID, verified)
	if err != nil {
		h.log.WithError(err).Error("failed to list registrations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	return c.JSON(registrations)
}

// MyApplicants lists every registration across the caller's talents.
func (h *Handler) MyApplicants(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	tutor, err := h.tutors.ByUserID(c.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to load tutor profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if tutor == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.NotATutor})
	}

	registrations, err := h.registrations.ListByTutor(c.Context(), tutor.ID)
	if err != nil {
		h.log.WithError(err).Error("failed to list applicants")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	return c.JSON(registrations)
}

// VerifyRegistration lets the owning tutor toggle the confirmation flag
// on a registration to one of their talents.
func (h *Handler) VerifyRegistration(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	tutor, err := h.tutors.ByUserID(c.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to load tutor profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if tutor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.RegistrationNotFound})
	}

	registration, err := h.registrations.ByID(c.Context(), registrationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.RegistrationNotFound})
		}
		h.log.WithError(err).Error("failed to load registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	talent, err := h.talents.ByID(c.Context(), registration.Location.TalentID)
	if err != nil {
		h.log.WithError(err).Error("failed to load talent for registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if !verify.IsOwner(tutor, talent) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	detail := verify.ToggleVerified(registration)
	if err := h.registrations.Save(c.Context(), registration); err != nil {
		h.log.WithError(err).Error("failed to save registration")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update registration"})
	}

	return c.JSON(fiber.Map{"detail": detail})
}
