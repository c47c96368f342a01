package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type ScheduleView struct {
	BarberID    uint   `json:"barbero_id"`
	StartTime   string `json:"horario_inicio"`
	EndTime     string `json:"horario_fin"`
	WorkingDays []int  `json:"dias_laborales"`
}

func scheduleView(b *models.BarberProfile) *ScheduleView {
	v := barberView(*b)
	return &ScheduleView{
		BarberID:    b.ID,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		WorkingDays: v.WorkingDays,
	}
}

func ownedBarber(ctx context.Context, repo Repository, p auth.Principal, barberID uint) (*models.BarberProfile, error) {
	if err := auth.Authorize(p, auth.ActionManageSchedule); err != nil {
		return nil, err
	}

	b, err := repo.GetBarber(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbero no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get barber: %w", err)
	}

	if err := auth.AuthorizeOwner(p, auth.ActionManageSchedule, b.UserID); err != nil {
		return nil, err
	}
	return b, nil
}

// ======================================================
// GET
// ======================================================

type GetSchedule struct {
	repo Repository
}

func NewGetSchedule(repo Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

func (uc *GetSchedule) Execute(ctx context.Context, p auth.Principal, barberID uint) (*ScheduleView, error) {
	b, err := ownedBarber(ctx, uc.repo, p, barberID)
	if err != nil {
		return nil, err
	}
	return scheduleView(b), nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateScheduleInput fields left empty keep their stored value.
// WorkingDays is the raw submitted list in any form ParseWorkingDays takes.
type UpdateScheduleInput struct {
	Principal   auth.Principal
	BarberID    uint
	StartTime   string
	EndTime     string
	WorkingDays string
}

type UpdateSchedule struct {
	repo  Repository
	audit audit.Recorder
}

func NewUpdateSchedule(repo Repository, audit audit.Recorder) *UpdateSchedule {
	return &UpdateSchedule{repo: repo, audit: audit}
}

func (uc *UpdateSchedule) Execute(ctx context.Context, in UpdateScheduleInput) (*ScheduleView, error) {
	b, err := ownedBarber(ctx, uc.repo, in.Principal, in.BarberID)
	if err != nil {
		return nil, err
	}

	start, end := b.StartTime, b.EndTime
	if s := strings.TrimSpace(in.StartTime); s != "" {
		start = s
	}
	if e := strings.TrimSpace(in.EndTime); e != "" {
		end = e
	}

	window, err := domain.NewWorkingWindow(start, end)
	if err != nil {
		return nil, err
	}

	days := b.WorkingDays
	if strings.TrimSpace(in.WorkingDays) != "" {
		parsed, err := domain.ParseWorkingDays(in.WorkingDays)
		if err != nil {
			return nil, err
		}
		days = parsed.Encode()
	}

	b.StartTime = window.Start.String()
	b.EndTime = window.End.String()
	b.WorkingDays = days

	if err := uc.repo.UpdateBarberSchedule(ctx, b.ID, b.StartTime, b.EndTime, b.WorkingDays); err != nil {
		return nil, fmt.Errorf("update schedule: %w", err)
	}

	view := scheduleView(b)
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   audit.ActionScheduleUpdated,
		Entity:   "barber_profile",
		EntityID: &b.ID,
		Metadata: view,
	})

	return view, nil
}
