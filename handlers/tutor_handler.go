package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
)

// tutorFields is the static whitelist for tutor profile updates.
var tutorFields = map[string]struct{}{
	"verification_method": {},
	"verification_images": {},
	"school":              {},
	"major":               {},
	"current_status":      {},
}

// requiredString pulls a non-empty string field out of a parsed body.
func requiredString(body map[string]any, name string) (string, bool) {
	v, ok := body[name].(string)
	return v, ok && v != ""
}

// ApplyTutor handles tutor self-registration.
//
// Required: verification_method, verification_images (evidence URL from
// the direct upload). Optional: school, major, current_status, though
// current_status becomes required when the method implies student or
// graduate status.
func (h *Handler) ApplyTutor(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": messages.NoPermission})
	}

	existing, err := h.tutors.ByUserID(c.Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to check for existing tutor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Database error"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.AlreadyTutor})
	}

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}

	for _, name := range []string{"verification_method", "verification_images"} {
		if _, ok := requiredString(body, name); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"non_field_error": messages.MissingField(name)})
		}
	}

	method := models.VerificationMethod(body["verification_method"].(string))
	if !method.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}

	school, _ := body["school"].(string)
	major, _ := body["major"].(string)
	currentStatus, _ := body["current_status"].(string)

	if method.RequiresStatus() && currentStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.StatusRequired})
	}

	tutor := models.Tutor{
		UserID:             userID,
		VerificationMethod: method,
		VerificationImages: body["verification_images"].(string),
		School:             school,
		Major:              major,
		CurrentStatus:      currentStatus,
	}
	if err := h.tutors.Create(c.Context(), &tutor); err != nil {
		h.log.WithError(err).Error("failed to create tutor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create tutor"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": messages.TutorApplied})
}

func (h *Handler) GetMyTutorProfile(c *fiber.Ctx) error {
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

	return c.JSON(tutor)
}

func (h *Handler) UpdateMyTutorProfile(c *fiber.Ctx) error {
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

	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
	}

	for key := range body {
		if _, ok := tutorFields[key]; !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
		}
	}

	method := tutor.VerificationMethod
	if v, ok := body["verification_method"].(string); ok {
		method = models.VerificationMethod(v)
		if !method.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.InvalidData})
		}
	}

	currentStatus := tutor.CurrentStatus
	if v, ok := body["current_status"].(string); ok {
		currentStatus = v
	}

	if method.RequiresStatus() && currentStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": messages.StatusRequired})
	}

	tutor.VerificationMethod = method
	tutor.CurrentStatus = currentStatus
	if v, ok := body["verification_images"].(string); ok {
		tutor.VerificationImages = v
	}
	if v, ok := body["school"].(string); ok {
		tutor.School = v
	}
	if v, ok := body["major"].(string); ok {
		tutor.Major = v
	}

	if err := h.tutors.Save(c.Context(), tutor); err != nil {
		h.log.WithError(err).Error("failed to update tutor")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to update tutor"})
	}

	return c.JSON(fiber.Map{"detail": messages.TutorUpdated})
}
