package survey

import (
	"context"

	"github.com/barberrock/booking-api/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// GetAppointmentBySurveyToken preloads barber, client, service and package.
	GetAppointmentBySurveyToken(ctx context.Context, token string) (*models.Appointment, error)
	GetSurveyByAppointment(ctx context.Context, appointmentID uint) (*models.Survey, error)

	// SaveSurvey and SaveTestimonial upsert on the appointment id.
	SaveSurvey(ctx context.Context, s *models.Survey) error
	SaveTestimonial(ctx context.Context, t *models.Testimonial) error
	MarkSurveyCompleted(ctx context.Context, appointmentID uint) error
	SetSurveyToken(ctx context.Context, appointmentID uint, token string) error

	GetActiveBarberByQRToken(ctx context.Context, token string) (*models.BarberProfile, error)
	GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error)
	SetQRToken(ctx context.Context, barberID uint, token string) error

	GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error)

	// FindPendingSurveyWithBarber returns nil when nothing is pending.
	FindPendingSurveyWithBarber(ctx context.Context, clientID, barberID uint) (*models.Appointment, error)
}
