package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
)

func newTutorApp(s *stores, userID uuid.UUID) *fiber.App {
	h := newTestHandler(s)
	app := fiber.New()
	app.Post("/tutors/apply", asUser(userID, false, h.ApplyTutor))
	app.Patch("/tutors/me", asUser(userID, false, h.UpdateMyTutorProfile))
	return app
}

func TestApplyTutor_FirstApplication(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/tutors/apply", map[string]any{
		"verification_method": "UN",
		"verification_images": "https://res.cloudinary.com/demo/evidence.png",
		"current_status":      "enrolled",
	})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if s.tutors.createCalls != 1 {
		t.Fatalf("expected tutor create to be called")
	}
}

func TestApplyTutor_AlreadyRegistered(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	s.tutors.byUserID = func(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
		return &models.Tutor{ID: uuid.New(), UserID: id}, nil
	}
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/tutors/apply", map[string]any{
		"verification_method": "UN",
		"verification_images": "https://res.cloudinary.com/demo/evidence.png",
		"current_status":      "enrolled",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["detail"] != messages.AlreadyTutor {
		t.Fatalf("unexpected detail: %v", body["detail"])
	}
	if s.tutors.createCalls != 0 {
		t.Fatalf("expected no create on second application")
	}
}

func TestApplyTutor_MissingRequiredField(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/tutors/apply", map[string]any{
		"verification_method": "UN",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["non_field_error"] != messages.MissingField("verification_images") {
		t.Fatalf("unexpected error: %v", body["non_field_error"])
	}
}

func TestApplyTutor_StatusRequiredForStudentMethods(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/tutors/apply", map[string]any{
		"verification_method": "GR",
		"verification_images": "https://res.cloudinary.com/demo/evidence.png",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["detail"] != messages.StatusRequired {
		t.Fatalf("unexpected detail: %v", body["detail"])
	}

	// A certificate application carries no enrollment status and must
	// pass without one.
	resp = doRequest(t, app, http.MethodPost, "/tutors/apply", map[string]any{
		"verification_method": "CP",
		"verification_images": "https://res.cloudinary.com/demo/evidence.png",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for CP without status, got %d", resp.StatusCode)
	}
}

func TestUpdateTutor_UnknownFieldRejected(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	s.tutors.byUserID = func(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
		return &models.Tutor{ID: uuid.New(), UserID: id, VerificationMethod: models.MethodCertificate}, nil
	}
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPatch, "/tutors/me", map[string]any{"bogus": "x"})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if s.tutors.saveCalls != 0 {
		t.Fatalf("expected no write on rejection")
	}
}

func TestUpdateTutor_SwitchToStudentMethodNeedsStatus(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	s.tutors.byUserID = func(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
		return &models.Tutor{ID: uuid.New(), UserID: id, VerificationMethod: models.MethodCertificate}, nil
	}
	app := newTutorApp(s, userID)

	resp := doRequest(t, app, http.MethodPatch, "/tutors/me",
		map[string]any{"verification_method": "UN"})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["detail"] != messages.StatusRequired {
		t.Fatalf("unexpected detail: %v", body["detail"])
	}
}
