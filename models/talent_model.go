package models

import (
	"time"

	"github.com/google/uuid"
)

type Talent struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID      uuid.UUID `gorm:"type:uuid;not null" json:"tutor_id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Category     string    `gorm:"size:50;not null" json:"category"`
	ClassType    string    `gorm:"size:20;not null" json:"class_type"`
	PricePerHour int       `gorm:"not null" json:"price_per_hour"`
	ClassInfo    string    `gorm:"type:text" json:"class_info"`
	IsSoldout    bool      `gorm:"default:false" json:"is_soldout"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"`

	// Removing a talent takes its schedule slots, wishlist entries and
	// reviews with it, so deleting a tutor (or their user) never trips
	// over rows other users created against the talent.
	Tutor     Tutor      `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`
	Locations []Location `gorm:"constraint:OnDelete:CASCADE" json:"locations,omitempty"`
	WishLists []WishList `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews   []Review   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Talent) Verified() bool     { return t.IsVerified }
func (t *Talent) SetVerified(v bool) { t.IsVerified = v }

// ShortInfo is the trimmed representation used in list responses and
// verification replies.
type TalentShortInfo struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	PricePerHour int       `json:"price_per_hour"`
	IsSoldout    bool      `json:"is_soldout"`
	IsVerified   bool      `json:"is_verified"`
}

func (t *Talent) ShortInfo() TalentShortInfo {
	return TalentShortInfo{
		ID:           t.ID,
		Title:        t.Title,
		Category:     t.Category,
		PricePerHour: t.PricePerHour,
		IsSoldout:    t.IsSoldout,
		IsVerified:   t.IsVerified,
	}
}
