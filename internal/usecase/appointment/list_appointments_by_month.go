package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	p auth.Principal,
	barberID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, httperr.InvalidInput("invalid_month", "Mes inválido.")
	}

	barber, err := agendaBarber(ctx, uc.repo, p, barberID)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

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
