package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a student's application to a location. IsVerified is
// the tutor's confirmation flag.
type Registration struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	LocationID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_location_student" json:"location_id"`
	StudentID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_location_student" json:"student_id"`
	StudentLevel     string    `gorm:"size:50" json:"student_level"`
	ExperienceLength string    `gorm:"size:100" json:"experience_length"`
	Message          string    `gorm:"type:text" json:"message"`
	IsVerified       bool      `gorm:"default:false" json:"is_verified"`

	Location Location `gorm:"foreignkey:LocationID" json:"location,omitempty"`
	Student  User     `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Registration) Verified() bool     { return r.IsVerified }
func (r *Registration) SetVerified(v bool) { r.IsVerified = v }
