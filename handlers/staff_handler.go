package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/notifications"
	"github.com/gorimarket/talent-api/verify"
)

// VerifyTutor toggles a tutor's verification flag. Staff only (gated by
// the StaffRequired middleware on the route).
func (h *Handler) VerifyTutor(c *fiber.Ctx) error {
	tutorID, err := uuid.Parse(c.Params("tutorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TutorNotFound})
	}

	tutor, err := h.tutors.ByID(c.Context(), tutorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TutorNotFound})
		}
		h.log.WithError(err).Error("failed to load tutor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	detail := verify.ToggleVerified(tutor)
	if err := h.tutors.Save(c.Context(), tutor); err != nil {
		h.log.WithError(err).Error("failed to save tutor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update tutor"})
	}

	if tutor.IsVerified {
		if user, err := h.users.ByID(c.Context(), tutor.UserID); err == nil {
			go notifications.SendEmail(
				user.Name,
				user.Email,
				"Your tutor verification is complete",
				"<h1>Congratulations!</h1><p>Your tutor profile has been verified. Students can now find your classes.</p>",
			)
		}
	}

	return c.JSON(fiber.Map{"detail": detail})
}

// VerifyTalent toggles a talent's verification flag and echoes the
// short info so staff tooling can refresh its list row.
func (h *Handler) VerifyTalent(c *fiber.Ctx) error {
	talentID, err := uuid.Parse(c.Params("talentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TalentNotFound})
	}

	talent, err := h.talents.ByID(c.Context(), talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TalentNotFound})
		}
		h.log.WithError(err).Error("failed to load talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	detail := verify.ToggleVerified(talent)
	if err := h.talents.Save(c.Context(), talent); err != nil {
		h.log.WithError(err).Error("failed to save talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update class"})
	}

	return c.JSON(fiber.Map{"detail": detail, "result": talent.ShortInfo()})
}

// ToggleSoldout flips the sold-out flag on a talent.
func (h *Handler) ToggleSoldout(c *fiber.Ctx) error {
	talentID, err := uuid.Parse(c.Params("talentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TalentNotFound})
	}

	talent, err := h.talents.ByID(c.Context(), talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.TalentNotFound})
		}
		h.log.WithError(err).Error("failed to load talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	detail := verify.ToggleSoldout(talent)
	if err := h.talents.Save(c.Context(), talent); err != nil {
		h.log.WithError(err).Error("failed to save talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update class"})
	}

	return c.JSON(fiber.Map{"detail": detail, "result": talent.ShortInfo()})
}
