package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

type ChangeStatusInput struct {
	Principal     auth.Principal
	AppointmentID uint
	Status        string
}

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit audit.Recorder
	loc   *time.Location
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit audit.Recorder,
	loc *time.Location,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute applies one lifecycle transition. Completing an appointment credits
// the client's loyalty counter and backfills a missing survey token in the
// same transaction.
func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	in ChangeStatusInput,
) (*models.Appointment, error) {

	if err := auth.Authorize(in.Principal, auth.ActionChangeAppointmentStatus); err != nil {
		return nil, err
	}

	to, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var (
		ap   *models.Appointment
		from domain.Status
	)

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		found, err := tx.GetAppointment(ctx, in.AppointmentID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFoundErr("appointment_not_found", "Cita no encontrada.")
		}
		if err != nil {
			return fmt.Errorf("get appointment: %w", err)
		}
		ap = found

		if err := auth.AuthorizeOwner(in.Principal, auth.ActionChangeAppointmentStatus, ap.Barber.UserID); err != nil {
			return err
		}

		from = domain.Status(ap.Status)
		now := timezone.NowIn(uc.loc)
		if err := domain.Transition(ap, to, now); err != nil {
			return err
		}

		if to == domain.StatusCompleted {
			domain.EnsureSurveyToken(ap)
			if ap.ClientID != nil {
				if err := tx.IncrementLoyalty(ctx, *ap.ClientID, now); err != nil {
					return fmt.Errorf("increment loyalty: %w", err)
				}
			}
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return fmt.Errorf("update appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   audit.ActionAppointmentStatusChanged,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": string(from), "to": string(to)},
	})

	return ap, nil
}
