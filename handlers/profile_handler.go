package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/utils"
)

// profileFields is the static whitelist of keys a profile PATCH may
// carry. Anything else is rejected before any write happens.
var profileFields = map[string]struct{}{
	"name":              {},
	"nickname":          {},
	"cellphone":         {},
	"profile_image_url": {},
}

func (h *Handler) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	user, err := h.users.ByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
	}

	return c.JSON(user)
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}

	for key := range body {
		if _, ok := profileFields[key]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
		}
	}

	if raw, ok := body["cellphone"].(string); ok {
		if len(raw) != len(utils.RemoveNonNumeric(raw)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.CellphoneDigits})
		}
	}

	user, err := h.users.ByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
	}

	if v, ok := body["name"].(string); ok {
		user.Name = v
	}
	if v, ok := body["nickname"].(string); ok {
		user.Nickname = v
	}
	if v, ok := body["cellphone"].(string); ok {
		user.Cellphone = v
	}
	if v, ok := body["profile_image_url"].(string); ok {
		user.ProfileImageURL = &v
	}

	if err := h.users.Save(c.Context(), user); err != nil {
		h.log.WithError(err).Error("failed to update profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update profile"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteProfile removes the user together with their tutor profile,
// talents, wishlist rows, registrations and reviews.
func (h *Handler) DeleteProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	user, err := h.users.ByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
		}
		h.log.WithError(err).Error("failed to load user for delete")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to delete user"})
	}

	if err := h.users.Delete(c.Context(), user); err != nil {
		h.log.WithError(err).Error("failed to delete user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"detail": messages.UserDeleted})
}
