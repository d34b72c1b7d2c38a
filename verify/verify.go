// Package verify holds the small set of business rules shared by the
// API handlers: boolean verification toggles, duplicate detection and
// talent ownership checks.
package verify

import (
	"context"

	"github.com/google/uuid"

	"github.com/gorimarket/talent-api/messages"
	"github.com/gorimarket/talent-api/models"
)

// Verifiable is any record carrying an is_verified flag.
type Verifiable interface {
	Verified() bool
	SetVerified(bool)
}

// ToggleVerified flips the verification flag and returns the matching
// detail message. It is a strict toggle, never a no-op: two consecutive
// calls return the record to its original state. Persisting the flip is
// the caller's job.
func ToggleVerified(v Verifiable) string {
	if v.Verified() {
		v.SetVerified(false)
		return messages.VerificationCancelled
	}
	v.SetVerified(true)
	return messages.VerificationConfirmed
}

// ToggleSoldout is the same toggle contract applied to a talent's
// sold-out flag.
func ToggleSoldout(t *models.Talent) string {
	if t.IsSoldout {
		t.IsSoldout = false
		return messages.SoldoutCancelled
	}
	t.IsSoldout = true
	return messages.SoldoutConfirmed
}

// Counter counts records matching some fixed key. Repositories provide
// these as closures so the guard stays ignorant of entity kinds.
type Counter func(ctx context.Context) (int64, error)

// Duplicates reports whether any record matches the counter's key,
// together with the detail message for the duplicate case. Absence of a
// match is the success path; only store failures return an error.
func Duplicates(ctx context.Context, count Counter) (bool, string, error) {
	n, err := count(ctx)
	if err != nil {
		return false, "", err
	}
	if n > 0 {
		return true, messages.AlreadyExists, nil
	}
	return false, "", nil
}

// IsOwner reports whether tutor owns talent. A nil tutor (the caller
// has no tutor profile) never owns anything. Staff elevation is handled
// by role checks elsewhere, never here.
func IsOwner(tutor *models.Tutor, talent *models.Talent) bool {
	return tutor != nil && tutor.ID == talent.TutorID
}

// MembershipStore is the minimal wishlist surface ToggleMembership
// needs.
type MembershipStore interface {
	Find(ctx context.Context, userID, talentID uuid.UUID) (*models.WishList, error)
	Create(ctx context.Context, w *models.WishList) error
	Delete(ctx context.Context, w *models.WishList) error
}

// ToggleMembership adds the (user, talent) pair when absent and removes
// it when present. This toggles the existence of a join row, which is a
// different operation from ToggleVerified's read-modify-write on a
// flag, so it gets its own name. Returns added=true when a row was
// created.
func ToggleMembership(ctx context.Context, store MembershipStore, userID, talentID uuid.UUID) (bool, error) {
	existing, err := store.Find(ctx, userID, talentID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, store.Delete(ctx, existing)
	}
	return true, store.Create(ctx, &models.WishList{UserID: userID, TalentID: talentID})
}
