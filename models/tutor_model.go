package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationMethod is the kind of evidence a tutor applied with.
type VerificationMethod string

const (
	MethodUniversity  VerificationMethod = "UN" // enrolled university student
	MethodGraduate    VerificationMethod = "GR" // graduate
	MethodCertificate VerificationMethod = "CP" // professional certificate
	MethodEtc         VerificationMethod = "ET"
)

// Valid reports whether m is one of the recognised methods.
func (m VerificationMethod) Valid() bool {
	switch m {
	case MethodUniversity, MethodGraduate, MethodCertificate, MethodEtc:
		return true
	}
	return false
}

// RequiresStatus reports whether applicants with this method must also
// state their enrollment status (enrolled / graduated / completed).
func (m VerificationMethod) RequiresStatus() bool {
	return m == MethodUniversity || m == MethodGraduate
}

type Tutor struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;unique" json:"user_id"`
	VerificationMethod VerificationMethod `gorm:"size:2;not null" json:"verification_method"`
	VerificationImages string             `gorm:"size:255;not null" json:"verification_images"`
	School             string             `gorm:"size:100" json:"school"`
	Major              string             `gorm:"size:100" json:"major"`
	CurrentStatus      string             `gorm:"size:50" json:"current_status"`
	IsVerified         bool               `gorm:"default:false" json:"is_verified"`

	User    User     `gorm:"foreignkey:UserID" json:"-"`
	Talents []Talent `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tutor) Verified() bool     { return t.IsVerified }
func (t *Tutor) SetVerified(v bool) { t.IsVerified = v }
