package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) CountByUserAndTalent(ctx context.Context, userID, talentID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("user_id = ? AND talent_id = ?", userID, talentID).
		Count(&n).Error
	return n, err
}
