package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Nickname        string    `gorm:"size:50" json:"nickname"`
	Email           string    `gorm:"size:255;not null;unique" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	Cellphone       string    `gorm:"size:20" json:"cellphone"`
	ProfileImageURL *string   `gorm:"size:255" json:"profile_image_url"`
	IsStaff         bool      `gorm:"default:false" json:"is_staff"`

	// Deleting a user takes its tutor profile, wishlist entries,
	// registrations and reviews with it.
	Tutor         *Tutor         `gorm:"constraint:OnDelete:CASCADE" json:"tutor,omitempty"`
	WishLists     []WishList     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Registrations []Registration `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []Review       `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
