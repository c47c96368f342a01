package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

const msgBarberNotWorking = "El barbero no trabaja este día"

type AvailabilityResult struct {
	Date    time.Time
	Barber  *models.BarberProfile
	Slots   []domain.Slot
	Message string
}

type GetAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetAvailability(repo domain.Repository, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, loc: loc}
}

// Execute lists the bookable slots of one barber day. The result is advisory;
// booking re-derives it under lock.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*AvailabilityResult, error) {

	if in.DurationMin <= 0 {
		return nil, httperr.InvalidInput("invalid_duration", "Duración inválida.")
	}

	barber, err := activeBarber(ctx, uc.repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	day := timezone.StartOfDay(in.Date, uc.loc)
	result := &AvailabilityResult{Date: day, Barber: barber, Slots: []domain.Slot{}}

	schedule, err := domain.ScheduleOf(barber)
	if err != nil {
		return nil, err
	}
	if !schedule.WorksOn(day) {
		result.Message = msgBarberNotWorking
		return result, nil
	}

	from, to := timezone.DayRange(day, uc.loc)
	apps, err := uc.repo.ListOccupyingAppointments(ctx, barber.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list occupying appointments: %w", err)
	}

	result.Slots = domain.AvailableSlots(
		day,
		schedule.Window,
		in.DurationMin,
		domain.OccupiedIntervals(apps),
	)
	return result, nil
}

func activeBarber(ctx context.Context, repo domain.Repository, barberID uint) (*models.BarberProfile, error) {
	barber, err := repo.GetBarber(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !barber.Active) {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbero no encontrado o inactivo.")
	}
	if err != nil {
		return nil, fmt.Errorf("get barber: %w", err)
	}
	return barber, nil
}
