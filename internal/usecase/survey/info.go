package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type ServiceInfo struct {
	Name        string `json:"nombre"`
	DurationMin *int   `json:"duracion"`
}

type Info struct {
	AppointmentID uint           `json:"cita_id"`
	Token         string         `json:"token"`
	HasSurvey     bool           `json:"tiene_encuesta"`
	ClientName    string         `json:"cliente_nombre"`
	ClientEmail   string         `json:"cliente_email"`
	Barber        dto.BarberRef  `json:"barbero"`
	Service       ServiceInfo    `json:"servicio"`
	StartTime     time.Time      `json:"fecha_hora"`
	Survey        *models.Survey `json:"encuesta"`
}

type GetInfo struct {
	repo Repository
}

func NewGetInfo(repo Repository) *GetInfo {
	return &GetInfo{repo: repo}
}

func (uc *GetInfo) Execute(ctx context.Context, token string) (*Info, error) {
	ap, err := appointmentByToken(ctx, uc.repo, token)
	if err != nil {
		return nil, err
	}

	info := &Info{
		AppointmentID: ap.ID,
		Token:         ap.SurveyToken,
		ClientName:    dto.ContactName(*ap),
		Barber:        dto.BarberRef{ID: ap.Barber.ID, Name: ap.Barber.User.DisplayName()},
		StartTime:     ap.StartTime,
	}

	switch {
	case ap.Client != nil && ap.Client.User.Email != "":
		info.ClientEmail = ap.Client.User.Email
	case ap.ContactEmail != nil:
		info.ClientEmail = *ap.ContactEmail
	}

	if ap.Service != nil {
		d := ap.Service.DurationMin
		info.Service = ServiceInfo{Name: ap.Service.Name, DurationMin: &d}
	} else if ap.Package != nil {
		info.Service = ServiceInfo{Name: ap.Package.Name}
	}

	s, err := uc.repo.GetSurveyByAppointment(ctx, ap.ID)
	switch {
	case err == nil:
		info.Survey = s
		info.HasSurvey = true
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("get survey: %w", err)
	}

	return info, nil
}

func appointmentByToken(ctx context.Context, repo Repository, token string) (*models.Appointment, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, httperr.InvalidInput("missing_token", "Token de encuesta requerido.")
	}

	ap, err := repo.GetAppointmentBySurveyToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("invalid_token", "Token de encuesta inválido.")
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment by token: %w", err)
	}
	return ap, nil
}
