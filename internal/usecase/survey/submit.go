package survey

import (
	"context"
	"fmt"
	"strings"

	"github.com/barberrock/booking-api/internal/audit"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

const defaultTestimonial = "El cliente no dejó comentarios adicionales."

type SubmitInput struct {
	Token string

	// Rating is required; the sub-ratings default to 5.
	Rating      *int
	Cleanliness *int
	Punctuality *int
	Treatment   *int

	WouldRecommend *bool
	Comments       string
}

type Submit struct {
	repo  Repository
	audit audit.Recorder
}

func NewSubmit(repo Repository, audit audit.Recorder) *Submit {
	return &Submit{repo: repo, audit: audit}
}

// Execute records the answers, marks the appointment surveyed and stores an
// inactive testimonial for moderation. Resubmitting overwrites. Only completed
// appointments take answers.
func (uc *Submit) Execute(ctx context.Context, in SubmitInput) (*models.Survey, error) {
	ap, err := appointmentByToken(ctx, uc.repo, in.Token)
	if err != nil {
		return nil, err
	}
	if ap.Status != string(domain.StatusCompleted) {
		return nil, httperr.InvalidInput(
			"appointment_not_completed",
			"La encuesta solo está disponible para citas completadas.",
		)
	}

	if in.Rating == nil {
		return nil, httperr.InvalidInput("invalid_rating", "Las calificaciones deben ser valores numéricos.")
	}
	if *in.Rating < 1 || *in.Rating > 5 {
		return nil, httperr.InvalidInput("invalid_rating", "La calificación general debe estar entre 1 y 5.")
	}

	recommend := true
	if in.WouldRecommend != nil {
		recommend = *in.WouldRecommend
	}
	comments := strings.TrimSpace(in.Comments)

	s := &models.Survey{
		AppointmentID:     ap.ID,
		Rating:            *in.Rating,
		CleanlinessRating: subRating(in.Cleanliness),
		PunctualityRating: subRating(in.Punctuality),
		TreatmentRating:   subRating(in.Treatment),
		WouldRecommend:    recommend,
		Comments:          comments,
	}

	text := comments
	if text == "" {
		text = defaultTestimonial
	}
	serviceName := ""
	if ap.Service != nil {
		serviceName = ap.Service.Name
	}

	err = uc.repo.WithinTx(ctx, func(tx Repository) error {
		if err := tx.SaveSurvey(ctx, s); err != nil {
			return fmt.Errorf("save survey: %w", err)
		}
		if !ap.SurveyCompleted {
			if err := tx.MarkSurveyCompleted(ctx, ap.ID); err != nil {
				return fmt.Errorf("mark survey completed: %w", err)
			}
		}
		appointmentID := ap.ID
		return tx.SaveTestimonial(ctx, &models.Testimonial{
			ClientName:      dto.ContactName(*ap),
			Text:            text,
			Rating:          *in.Rating,
			ServiceReceived: serviceName,
			Active:          false,
			AppointmentID:   &appointmentID,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionSurveySubmitted,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]int{"rating": s.Rating},
	})

	return s, nil
}

func subRating(v *int) int {
	if v == nil {
		return 5
	}
	return max(1, min(*v, 5))
}
