package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barberrock/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status and stamps the matching timestamp.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func NewSurveyToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// EnsureSurveyToken backfills a missing token and reports whether it did.
// An existing token is never reissued.
func EnsureSurveyToken(ap *models.Appointment) bool {
	if ap.SurveyToken != "" {
		return false
	}
	ap.SurveyToken = NewSurveyToken()
	return true
}
