package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type TutorRepo struct {
	db *gorm.DB
}

func NewTutorRepo(db *gorm.DB) *TutorRepo {
	return &TutorRepo{db: db}
}

func (r *TutorRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
	var t models.Tutor
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ByUserID returns the user's tutor profile, or (nil, nil) when the
// user has never applied.
func (r *TutorRepo) ByUserID(ctx context.Context, userID uuid.UUID) (*models.Tutor, error) {
	var t models.Tutor
	err := r.db.WithContext(ctx).First(&t, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TutorRepo) Create(ctx context.Context, t *models.Tutor) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TutorRepo) Save(ctx context.Context, t *models.Tutor) error {
	return r.db.WithContext(ctx).Save(t).Error
}
