package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type WishListRepo struct {
	db *gorm.DB
}

func NewWishListRepo(db *gorm.DB) *WishListRepo {
	return &WishListRepo{db: db}
}

// Find returns the (user, talent) row, or (nil, nil) when the pair is
// not wishlisted.
func (r *WishListRepo) Find(ctx context.Context, userID, talentID uuid.UUID) (*models.WishList, error) {
	var w models.WishList
	err := r.db.WithContext(ctx).First(&w, "user_id = ? AND talent_id = ?", userID, talentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WishListRepo) Create(ctx context.Context, w *models.WishList) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WishListRepo) Delete(ctx context.Context, w *models.WishList) error {
	return r.db.WithContext(ctx).Delete(w).Error
}

// ListTalents returns the talents on the user's wishlist.
func (r *WishListRepo) ListTalents(ctx context.Context, userID uuid.UUID) ([]models.Talent, error) {
	var out []models.Talent
	err := r.db.WithContext(ctx).
		Joins("JOIN wish_lists ON wish_lists.talent_id = talents.id").
		Where("wish_lists.user_id = ?", userID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
