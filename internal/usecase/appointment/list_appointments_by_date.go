package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

// Execute lists one barber's agenda for a day. barberID 0 means the acting
// barber's own agenda.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	p auth.Principal,
	barberID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	barber, err := agendaBarber(ctx, uc.repo, p, barberID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayRange(date, uc.loc)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barber.ID,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("list agenda: %w", err)
	}

	return dto.AppointmentList(appointments), nil
}

func agendaBarber(
	ctx context.Context,
	repo domain.Repository,
	p auth.Principal,
	barberID uint,
) (*models.BarberProfile, error) {

	if err := auth.Authorize(p, auth.ActionViewAgenda); err != nil {
		return nil, err
	}

	var (
		barber *models.BarberProfile
		err    error
	)
	if barberID == 0 {
		if p.Role != auth.RoleBarber {
			return nil, httperr.InvalidInput("missing_barber", "Barbero requerido.")
		}
		barber, err = repo.GetBarberByUser(ctx, p.UserID)
	} else {
		barber, err = repo.GetBarber(ctx, barberID)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbero no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get barber: %w", err)
	}

	if err := auth.AuthorizeOwner(p, auth.ActionViewAgenda, barber.UserID); err != nil {
		return nil, err
	}
	return barber, nil
}
