package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gorimarket/talent-api/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Save(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Delete removes the user and, through the FK constraints declared on
// the models, its tutor profile, talents, wishlist rows, registrations
// and reviews.
func (r *UserRepo) Delete(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(u).Error
}
