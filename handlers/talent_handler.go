package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
)

type CreateTalentRequest struct {
	Title        string `json:"title" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ClassType    string `json:"class_type" validate:"required"`
	PricePerHour int    `json:"price_per_hour" validate:"required,gt=0"`
	ClassInfo    string `json:"class_info"`
}

func (h *Handler) CreateTalent(c *fiber.Ctx) error {
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

	var req CreateTalentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	talent := models.Talent{
		TutorID:      tutor.ID,
		Title:        req.Title,
		Category:     req.Category,
		ClassType:    req.ClassType,
		PricePerHour: req.PricePerHour,
		ClassInfo:    req.ClassInfo,
	}
	if err := h.talents.Create(c.Context(), &talent); err != nil {
		h.log.WithError(err).Error("failed to create talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create class"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": messages.TalentCreated(talent.Title)})
}

func (h *Handler) ListTalents(c *fiber.Ctx) error {
	talents, err := h.talents.List(c.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list talents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	out := make([]models.TalentShortInfo, 0, len(talents))
	for i := range talents {
		out = append(out, talents[i].ShortInfo())
	}
	return c.JSON(out)
}

func (h *Handler) GetTalent(c *fiber.Ctx) error {
	talentID, err := uuid.Parse(c.Params("talentId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": messages.TalentNotFound})
	}

	talent, err := h.talents.ByID(c.Context(), talentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": messages.TalentNotFound})
		}
		h.log.WithError(err).Error("failed to load talent")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	return c.JSON(talent)
}

// MyTalents lists the listings owned by the caller's tutor profile.
func (h *Handler) MyTalents(c *fiber.Ctx) error {
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

	talents, err := h.talents.ListByTutor(c.Context(), tutor.ID)
	if err != nil {
		h.log.WithError(err).Error("failed to list my talents")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	out := make([]models.TalentShortInfo, 0, len(talents))
	for i := range talents {
		out = append(out, talents[i].ShortInfo())
	}
	return c.JSON(out)
}
