package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type LocationRepo struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	var l models.Location
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepo) Create(ctx context.Context, l *models.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepo) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]models.Location, error) {
	var out []models.Location
	if err := r.db.WithContext(ctx).Where("talent_id = ?", talentID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CountByKey counts locations sharing the (talent, region, day)
// uniqueness key.
func (r *LocationRepo) CountByKey(ctx context.Context, talentID uuid.UUID, region, day string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Location{}).
		Where("talent_id = ? AND region = ? AND day = ?", talentID, region, day).
		Count(&n).Error
	return n, err
}
