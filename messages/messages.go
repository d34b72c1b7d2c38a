// Package messages keeps every human-readable detail string in one
// place so wording (or a future locale swap) never touches handler code.
package messages

import "fmt"

const (
	VerificationConfirmed = "Verification confirmed."
	VerificationCancelled = "Verification cancelled."
	SoldoutConfirmed      = "Marked as sold out."
	SoldoutCancelled      = "Sold out cancelled."

	AlreadyExists        = "The item already exists."
	AlreadyTutor         = "You are already registered as a tutor."
	NoPermission         = "You do not have permission for this request."
	InvalidData          = "Malformed request data."
	CellphoneDigits      = "cellphone may contain digits only."
	StatusRequired       = "Please provide your enrollment status (enrolled/graduated/completed)."
	NotATutor            = "You are not registered as a tutor."
	SelfWishlist         = "You cannot add your own class to your wishlist."
	TutorNotFound        = "The tutor could not be found."
	TalentNotFound       = "The class could not be found."
	LocationNotFound     = "The location could not be found."
	RegistrationNotFound = "The registration could not be found."

	UserDeleted         = "The user has been deleted."
	TutorApplied        = "Your tutor application has been submitted."
	TutorUpdated        = "Tutor profile updated."
	RegistrationCreated = "Your registration has been submitted."
)

func MissingField(name string) string {
	return fmt.Sprintf("%s field was not provided.", name)
}

func TalentMissing(pk string) string {
	return fmt.Sprintf("Class (%s) does not exist.", pk)
}

func LocationAdded(talent, region string) string {
	return fmt.Sprintf("Region [%s] was added to [%s].", region, talent)
}

func TalentCreated(title string) string {
	return fmt.Sprintf("Class [%s] has been created.", title)
}

func WishlistAdded(talent string) string {
	return fmt.Sprintf("Class [%s] was added to your wishlist.", talent)
}

func WishlistRemoved(talent string) string {
	return fmt.Sprintf("Class [%s] was removed from your wishlist.", talent)
}
