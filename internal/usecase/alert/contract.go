package alert

import (
	"context"
	"time"

	"github.com/barberrock/booking-api/internal/models"
)

type Repository interface {
	// ListPending returns unsent alerts of occupying appointments starting at
	// or after since, newest first, with the appointment graph preloaded.
	ListPending(ctx context.Context, since time.Time) ([]models.AppointmentAlert, error)
	GetAlert(ctx context.Context, alertID uint) (*models.AppointmentAlert, error)
	MarkSent(ctx context.Context, alertID uint, at time.Time) error
}
