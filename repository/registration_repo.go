package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorimarket/talent-api/models"
)

type RegistrationRepo struct {
	db *gorm.DB
}

func NewRegistrationRepo(db *gorm.DB) *RegistrationRepo {
	return &RegistrationRepo{db: db}
}

func (r *RegistrationRepo) ByID(ctx context.Context, id uuid.UUID) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.WithContext(ctx).
		Preload("Location").
		First(&reg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *RegistrationRepo) Save(ctx context.Context, reg *models.Registration) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

// ListByStudent returns the student's registrations filtered on the
// confirmation flag (false = still pending, true = enrolled).
func (r *RegistrationRepo) ListByStudent(ctx context.Context, studentID uuid.UUID, verified bool) ([]models.Registration, error) {
	var out []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("student_id = ? AND is_verified = ?", studentID, verified).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByTutor returns every registration across the tutor's talents.
func (r *RegistrationRepo) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]models.Registration, error) {
	var out []models.Registration
	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Student").
		Joins("JOIN locations ON locations.id = registrations.location_id").
		Joins("JOIN talents ON talents.id = locations.talent_id").
		Where("talents.tutor_id = ?", tutorID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RegistrationRepo) CountByKey(ctx context.Context, locationID, studentID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Registration{}).
		Where("location_id = ? AND student_id = ?", locationID, studentID).
		Count(&n).Error
	return n, err
}
