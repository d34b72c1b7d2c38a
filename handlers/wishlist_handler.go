package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
	"github.com/gorimarket/talent-api/verify"
)

// ToggleWishlist adds the talent to the caller's wishlist, or removes
// it when already present. Tutors can never wishlist their own talent.
func (h *Handler) ToggleWishlist(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

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

	tutor, err := h.tutors.ByUserID(c.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to load tutor profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if verify.IsOwner(tutor, talent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.SelfWishlist})
	}

	added, err := verify.ToggleMembership(c.Context(), h.wishlists, userID, talent.ID)
	if err != nil {
		h.log.WithError(err).Error("failed to toggle wishlist")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update wishlist"})
	}

	if added {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": messages.WishlistAdded(talent.Title)})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"detail": messages.WishlistRemoved(talent.Title)})
}

func (h *Handler) MyWishlist(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	talents, err := h.wishlists.ListTalents(c.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to list wishlist")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}

	out := make([]models.TalentShortInfo, 0, len(talents))
	for i := range talents {
		out = append(out, talents[i].ShortInfo())
	}
	return c.JSON(out)
}
