package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a schedule slot (region/day/time) a talent is taught at.
// The composite unique index is the authoritative duplicate guard; the
// application-level check only exists for the friendly error message.
type Location struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TalentID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_talent_region_day" json:"talent_id"`
	Region           string    `gorm:"size:50;not null;uniqueIndex:idx_talent_region_day" json:"region"`
	Day              string    `gorm:"size:20;not null;uniqueIndex:idx_talent_region_day" json:"day"`
	Time             string    `gorm:"size:50;not null" json:"time"`
	SpecificLocation bool      `gorm:"default:false" json:"specific_location"`
	ExtraFee         bool      `gorm:"default:false" json:"extra_fee"`
	ExtraFeeAmount   string    `gorm:"size:100" json:"extra_fee_amount"`
	LocationInfo     string    `gorm:"size:255" json:"location_info"`

	// Removing a location removes the registrations filed against it.
	Talent        Talent         `gorm:"foreignkey:TalentID" json:"-"`
	Registrations []Registration `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
