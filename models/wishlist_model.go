package models

import (
	"time"

	"github.com/google/uuid"
)

type WishList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_talent_wish" json:"user_id"`
	TalentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_talent_wish" json:"talent_id"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Talent Talent `gorm:"foreignkey:TalentID" json:"talent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
