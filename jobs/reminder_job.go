package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/gorimarket/talent-api/database"
	"github.com/gorimarket/talent-api/models"
	"github.com/gorimarket/talent-api/notifications"
)

const pendingReminderAge = 3 * 24 * time.Hour

// SendPendingRegistrationReminders mails tutors who have student
// registrations sitting unconfirmed for more than three days.
func SendPendingRegistrationReminders() {
	log.Println("Running job: SendPendingRegistrationReminders...")

	cutoff := time.Now().Add(-pendingReminderAge)

	var pending []models.Registration
	err := database.DB.
		Preload("Location").
		Where("is_verified = ? AND created_at < ?", false, cutoff).
		Find(&pending).Error
	if err != nil {
		log.Printf("Error checking for pending registrations: %v", err)
		return
	}

	// Group by talent so a tutor gets one mail per class, not one per
	// applicant.
	byTalent := make(map[string][]models.Registration)
	for _, reg := range pending {
		byTalent[reg.Location.TalentID.String()] = append(byTalent[reg.Location.TalentID.String()], reg)
	}

	for talentID, regs := range byTalent {
		var talent models.Talent
		if err := database.DB.Preload("Tutor").Preload("Tutor.User").First(&talent, "id = ?", talentID).Error; err != nil {
			log.Printf("Error loading talent %s for reminder: %v", talentID, err)
			continue
		}

		tutorUser := talent.Tutor.User
		body := fmt.Sprintf(
			"<p>Your class <b>%s</b> has %d registration(s) waiting for confirmation for more than 3 days.</p>",
			talent.Title, len(regs),
		)
		go notifications.SendEmail(
			tutorUser.Name,
			tutorUser.Email,
			"Registrations are waiting for your confirmation",
			body,
		)
	}
}
