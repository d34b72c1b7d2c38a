package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type TalentRepo struct {
	db *gorm.DB
}

func NewTalentRepo(db *gorm.DB) *TalentRepo {
	return &TalentRepo{db: db}
}

func (r *TalentRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Talent, error) {
	var t models.Talent
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TalentRepo) Create(ctx context.Context, t *models.Talent) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TalentRepo) Save(ctx context.Context, t *models.Talent) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TalentRepo) List(ctx context.Context) ([]models.Talent, error) {
	var out []models.Talent
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TalentRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Talent, error) {
	var out []models.Talent
	if err := r.db.WithContext(ctx).Where("tutor_id = ?", tutorID).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
