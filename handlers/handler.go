package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gorimarket/talent-api/models"
	"github.com/gorimarket/talent-api/verify"
)

var validate = validator.New()

type UserStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, u *models.User) error
}

type TutorStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Tutor, error)
	ByUserID(ctx context.Context, userID uuid.UUID) (*models.Tutor, error)
	Create(ctx context.Context, t *models.Tutor) error
	Save(ctx context.Context, t *models.Tutor) error
}

type TalentStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Talent, error)
	Create(ctx context.Context, t *models.Talent) error
	Save(ctx context.Context, t *models.Talent) error
	List(ctx context.Context) ([]models.Talent, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Talent, error)
}

type LocationStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	Create(ctx context.Context, l *models.Location) error
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]models.Location, error)
	CountByKey(ctx context.Context, talentID uuid.UUID, region, day string) (int64, error)
}

type RegistrationStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*models.Registration, error)
	Create(ctx context.Context, r *models.Registration) error
	Save(ctx context.Context, r *models.Registration) error
	ListByStudent(ctx context.Context, studentID uuid.UUID, verified bool) ([]models.Registration, error)
	ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Registration, error)
	CountByKey(ctx context.Context, locationID, studentID uuid.UUID) (int64, error)
}

type WishListStore interface {
	verify.MembershipStore
	ListTalents(ctx context.Context, userID uuid.UUID) ([]models.Talent, error)
}

type ReviewStore interface {
	CountByUserAndTalent(ctx context.Context, userID, talentID uuid.UUID) (int64, error)
}

// Handler carries the per-entity stores so every endpoint reaches the
// database through an injected interface instead of a package global.
type Handler struct {
	log           *logrus.Logger
	users         UserStore
	tutors        TutorStore
	talents       TalentStore
	locations     LocationStore
	registrations RegistrationStore
	wishlists     WishListStore
	reviews       ReviewStore
}

func New(log *logrus.Logger, users UserStore, tutors TutorStore, talents TalentStore,
	locations LocationStore, registrations RegistrationStore,
	wishlists WishListStore, reviews ReviewStore) *Handler {
	return &Handler{
		log:           log,
		users:         users,
		tutors:        tutors,
		talents:       talents,
		locations:     locations,
		registrations: registrations,
		wishlists:     wishlists,
		reviews:       reviews,
	}
}

// currentUserID reads the authenticated user's id from the JWT claims
// placed in locals by the Protected middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return uuid.Parse(claims["user_id"].(string))
}
