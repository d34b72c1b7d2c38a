package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type mockUserStore struct {
	byID        func(ctx context.Context, id uuid.UUID) (*models.User, error)
	saveErr     error
	saveCalls   int
	deleteCalls int
}

func (m *mockUserStore) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.byID != nil {
		return m.byID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) Save(ctx context.Context, u *models.User) error {
	m.saveCalls++
	return m.saveErr
}

func (m *mockUserStore) Delete(ctx context.Context, u *models.User) error {
	m.deleteCalls++
	return nil
}

type mockTutorStore struct {
	byID        func(ctx context.Context, id uuid.UUID) (*models.Tutor, error)
	byUserID    func(ctx context.Context, userID uuid.UUID) (*models.Tutor, error)
	createCalls int
	saveCalls   int
}

func (m *mockTutorStore) ByID(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
	if m.byID != nil {
		return m.byID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTutorStore) ByUserID(ctx context.Context, userID uuid.UUID) (*models.Tutor, error) {
	if m.byUserID != nil {
		return m.byUserID(ctx, userID)
	}
	return nil, nil
}

func (m *mockTutorStore) Create(ctx context.Context, t *models.Tutor) error {
	m.createCalls++
	return nil
}

func (m *mockTutorStore) Save(ctx context.Context, t *models.Tutor) error {
	m.saveCalls++
	return nil
}

type mockTalentStore struct {
	byID        func(ctx context.Context, id uuid.UUID) (*models.Talent, error)
	createCalls int
	saveCalls   int
}

func (m *mockTalentStore) ByID(ctx context.Context, id uuid.UUID) (*models.Talent, error) {
	if m.byID != nil {
		return m.byID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTalentStore) Create(ctx context.Context, t *models.Talent) error {
	m.createCalls++
	return nil
}

func (m *mockTalentStore) Save(ctx context.Context, t *models.Talent) error {
	m.saveCalls++
	return nil
}

func (m *mockTalentStore) List(ctx context.Context) ([]models.Talent, error) {
	return nil, nil
}

func (m *mockTalentStore) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Talent, error) {
	return nil, nil
}

type mockLocationStore struct {
	byID        func(ctx context.Context, id uuid.UUID) (*models.Location, error)
	countByKey  func(ctx context.Context, talentID uuid.UUID, region, day string) (int64, error)
	createCalls int
	created     *models.Location
}

func (m *mockLocationStore) ByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	if m.byID != nil {
		return m.byID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationStore) Create(ctx context.Context, l *models.Location) error {
	m.createCalls++
	m.created = l
	return nil
}

func (m *mockLocationStore) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]models.Location, error) {
	return nil, nil
}

func (m *mockLocationStore) CountByKey(ctx context.Context, talentID uuid.UUID, region, day string) (int64, error) {
	if m.countByKey != nil {
		return m.countByKey(ctx, talentID, region, day)
	}
	return 0, nil
}

type mockRegistrationStore struct {
	byID        func(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	countByKey  func(ctx context.Context, locationID, studentID uuid.UUID) (int64, error)
	createCalls int
	saveCalls   int
}

func (m *mockRegistrationStore) ByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	if m.byID != nil {
		return m.byID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationStore) Create(ctx context.Context, r *models.Registration) error {
	m.createCalls++
	return nil
}

func (m *mockRegistrationStore) Save(ctx context.Context, r *models.Registration) error {
	m.saveCalls++
	return nil
}

func (m *mockRegistrationStore) ListByStudent(ctx context.Context, studentID uuid.UUID, verified bool) ([]models.Registration, error) {
	return nil, nil
}

func (m *mockRegistrationStore) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Registration, error) {
	return nil, nil
}

func (m *mockRegistrationStore) CountByKey(ctx context.Context, locationID, studentID uuid.UUID) (int64, error) {
	if m.countByKey != nil {
		return m.countByKey(ctx, locationID, studentID)
	}
	return 0, nil
}

type mockWishListStore struct {
	find        func(ctx context.Context, userID, talentID uuid.UUID) (*models.WishList, error)
	createCalls int
	deleteCalls int
}

func (m *mockWishListStore) Find(ctx context.Context, userID, talentID uuid.UUID) (*models.WishList, error) {
	if m.find != nil {
		return m.find(ctx, userID, talentID)
	}
	return nil, nil
}

func (m *mockWishListStore) Create(ctx context.Context, w *models.WishList) error {
	m.createCalls++
	return nil
}

func (m *mockWishListStore) Delete(ctx context.Context, w *models.WishList) error {
	m.deleteCalls++
	return nil
}

func (m *mockWishListStore) ListTalents(ctx context.Context, userID uuid.UUID) ([]models.Talent, error) {
	return nil, nil
}

type mockReviewStore struct {
	count func(ctx context.Context, userID, talentID uuid.UUID) (int64, error)
}

func (m *mockReviewStore) CountByUserAndTalent(ctx context.Context, userID, talentID uuid.UUID) (int64, error) {
	if m.count != nil {
		return m.count(ctx, userID, talentID)
	}
	return 0, nil
}

type stores struct {
	users         *mockUserStore
	tutors        *mockTutorStore
	talents       *mockTalentStore
	locations     *mockLocationStore
	registrations *mockRegistrationStore
	wishlists     *mockWishListStore
	reviews       *mockReviewStore
}

func defaultStores() *stores {
	return &stores{
		users:         &mockUserStore{},
		tutors:        &mockTutorStore{},
		talents:       &mockTalentStore{},
		locations:     &mockLocationStore{},
		registrations: &mockRegistrationStore{},
		wishlists:     &mockWishListStore{},
		reviews:       &mockReviewStore{},
	}
}

func newTestHandler(s *stores) *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, s.users, s.tutors, s.talents, s.locations, s.registrations, s.wishlists, s.reviews)
}

// asUser wraps a handler so it sees the same JWT locals the Protected
// middleware would have set.
func asUser(userID uuid.UUID, staff bool, handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"user_id":  userID.String(),
			"is_staff": staff,
		}})
		return handler(c)
	}
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
