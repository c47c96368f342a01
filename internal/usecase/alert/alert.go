package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

// lookback keeps alerts of appointments from the last day visible.
const lookback = 24 * time.Hour

type View struct {
	ID            uint      `json:"id"`
	AppointmentID uint      `json:"appointment_id"`
	ClientName    string    `json:"cliente_nombre"`
	ClientPhone   string    `json:"cliente_telefono"`
	Barber        string    `json:"barbero"`
	Service       string    `json:"servicio"`
	StartTime     time.Time `json:"fecha_hora"`
	WhatsAppURL   *string   `json:"whatsapp_url"`
	CreatedAt     time.Time `json:"fecha_creacion"`
}

// ======================================================
// LIST
// ======================================================

type ListPending struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListPending(repo Repository, loc *time.Location) *ListPending {
	return &ListPending{repo: repo, loc: loc, now: time.Now}
}

func (uc *ListPending) Execute(ctx context.Context, p auth.Principal) ([]View, error) {
	if err := auth.Authorize(p, auth.ActionManageAlerts); err != nil {
		return nil, err
	}

	alerts, err := uc.repo.ListPending(ctx, uc.now().Add(-lookback))
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	out := make([]View, 0, len(alerts))
	for _, a := range alerts {
		ap := a.Appointment
		out = append(out, View{
			ID:            a.ID,
			AppointmentID: ap.ID,
			ClientName:    dto.ContactName(ap),
			ClientPhone:   ap.ContactPhone,
			Barber:        ap.Barber.User.DisplayName(),
			Service:       ap.ServiceName(),
			StartTime:     ap.StartTime,
			WhatsAppURL:   WhatsAppURL(ap, uc.loc),
			CreatedAt:     a.CreatedAt,
		})
	}
	return out, nil
}

// ======================================================
// MARK SENT
// ======================================================

type MarkSent struct {
	repo  Repository
	audit audit.Recorder
	loc   *time.Location
}

func NewMarkSent(repo Repository, audit audit.Recorder, loc *time.Location) *MarkSent {
	return &MarkSent{repo: repo, audit: audit, loc: loc}
}

// Execute is idempotent: an alert already sent keeps its first timestamp.
func (uc *MarkSent) Execute(ctx context.Context, p auth.Principal, alertID uint) (*models.AppointmentAlert, error) {
	if err := auth.Authorize(p, auth.ActionManageAlerts); err != nil {
		return nil, err
	}

	a, err := uc.repo.GetAlert(ctx, alertID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("alert_not_found", "Alerta no encontrada.")
	}
	if err != nil {
		return nil, fmt.Errorf("get alert: %w", err)
	}
	if a.Sent {
		return a, nil
	}

	now := timezone.NowIn(uc.loc)
	if err := uc.repo.MarkSent(ctx, a.ID, now); err != nil {
		return nil, fmt.Errorf("mark alert sent: %w", err)
	}
	a.Sent = true
	a.SentAt = &now

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   audit.ActionAlertSent,
		Entity:   "appointment_alert",
		EntityID: &a.ID,
	})

	return a, nil
}
