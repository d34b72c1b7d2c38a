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

func newRegistrationApp(s *stores, userID uuid.UUID) *fiber.App {
	h := newTestHandler(s)
	app := fiber.New()
	app.Post("/locations/:locationId/registrations", asUser(userID, false, h.CreateRegistration))
	app.Get("/registrations/:registrationId/verify", asUser(userID, false, h.VerifyRegistration))
	return app
}

func TestCreateRegistration_Normal(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	s := defaultStores()
	s.locations.byID = func(ctx context.Context, id uuid.UUID) (*models.Location, error) {
		return &models.Location{ID: id, TalentID: uuid.New()}, nil
	}
	app := newRegistrationApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/locations/"+locationID.String()+"/registrations",
		map[string]any{"student_level": "beginner", "message": "hi"})

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if s.registrations.createCalls != 1 {
		t.Fatalf("expected registration create to be called")
	}
}

func TestCreateRegistration_DuplicateRejected(t *testing.T) {
	userID := uuid.New()
	locationID := uuid.New()

	s := defaultStores()
	s.locations.byID = func(ctx context.Context, id uuid.UUID) (*models.Location, error) {
		return &models.Location{ID: id, TalentID: uuid.New()}, nil
	}
	s.registrations.countByKey = func(ctx context.Context, loc, student uuid.UUID) (int64, error) {
		return 1, nil
	}
	app := newRegistrationApp(s, userID)

	resp := doRequest(t, app, http.MethodPost, "/locations/"+locationID.String()+"/registrations",
		map[string]any{"student_level": "beginner"})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if s.registrations.createCalls != 0 {
		t.Fatalf("expected no create on duplicate")
	}
}

func TestVerifyRegistration_OwnerTogglesConfirmation(t *testing.T) {
	userID := uuid.New()
	tutorID := uuid.New()
	talentID := uuid.New()
	registrationID := uuid.New()

	registration := &models.Registration{
		ID:         registrationID,
		LocationID: uuid.New(),
		StudentID:  uuid.New(),
		Location:   models.Location{TalentID: talentID},
	}

	s := defaultStores()
	s.tutors.byUserID = func(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
		return &models.Tutor{ID: tutorID, UserID: id}, nil
	}
	s.registrations.byID = func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
		return registration, nil
	}
	s.talents.byID = func(ctx context.Context, id uuid.UUID) (*models.Talent, error) {
		return &models.Talent{ID: id, TutorID: tutorID}, nil
	}
	app := newRegistrationApp(s, userID)

	resp := doRequest(t, app, http.MethodGet, "/registrations/"+registrationID.String()+"/verify", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !registration.IsVerified {
		t.Fatalf("expected registration confirmed")
	}
	if got := decodeBody(t, resp)["detail"]; got != messages.VerificationConfirmed {
		t.Fatalf("unexpected detail: %v", got)
	}

	resp = doRequest(t, app, http.MethodGet, "/registrations/"+registrationID.String()+"/verify", nil)
	if registration.IsVerified {
		t.Fatalf("expected second toggle to cancel confirmation")
	}
	if got := decodeBody(t, resp)["detail"]; got != messages.VerificationCancelled {
		t.Fatalf("unexpected detail: %v", got)
	}
}

func TestVerifyRegistration_NonOwnerRejected(t *testing.T) {
	userID := uuid.New()
	registrationID := uuid.New()

	s := defaultStores()
	s.tutors.byUserID = func(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
		return &models.Tutor{ID: uuid.New(), UserID: id}, nil
	}
	s.registrations.byID = func(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
		return &models.Registration{ID: id, Location: models.Location{TalentID: uuid.New()}}, nil
	}
	s.talents.byID = func(ctx context.Context, id uuid.UUID) (*models.Talent, error) {
		return &models.Talent{ID: id, TutorID: uuid.New()}, nil
	}
	app := newRegistrationApp(s, userID)

	resp := doRequest(t, app, http.MethodGet, "/registrations/"+registrationID.String()+"/verify", nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if s.registrations.saveCalls != 0 {
		t.Fatalf("expected no write for non-owner")
	}
}

func TestVerifyRegistration_NotATutor(t *testing.T) {
	userID := uuid.New()
	s := defaultStores()
	app := newRegistrationApp(s, userID)

	resp := doRequest(t, app, http.MethodGet, "/registrations/"+uuid.NewString()+"/verify", nil)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
