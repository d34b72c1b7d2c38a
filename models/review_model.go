package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_talent_review" json:"user_id"`
	TalentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_talent_review" json:"talent_id"`
	Rating   int       `gorm:"not null" json:"rating"`
	Comment  string    `gorm:"type:text" json:"comment"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Talent Talent `gorm:"foreignkey:TalentID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
