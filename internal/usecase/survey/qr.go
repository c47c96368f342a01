package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

// ======================================================
// Public scan
// ======================================================

type ScanQR struct {
	repo Repository
}

func NewScanQR(repo Repository) *ScanQR {
	return &ScanQR{repo: repo}
}

func (uc *ScanQR) Execute(ctx context.Context, token string) (*dto.BarberRef, error) {
	barber, err := barberByQR(ctx, uc.repo, token)
	if err != nil {
		return nil, err
	}
	return &dto.BarberRef{ID: barber.ID, Name: barber.User.DisplayName()}, nil
}

// ======================================================
// Pending survey for the scanning client
// ======================================================

type PendingAppointment struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"fecha_hora"`
	Service     string    `json:"servicio"`
	Barber      string    `json:"barbero"`
	SurveyToken string    `json:"encuesta_token"`
}

type PendingByQR struct {
	repo Repository
}

func NewPendingByQR(repo Repository) *PendingByQR {
	return &PendingByQR{repo: repo}
}

func (uc *PendingByQR) Execute(ctx context.Context, p auth.Principal, token string) (*PendingAppointment, error) {
	if err := auth.Authorize(p, auth.ActionViewPendingSurvey); err != nil {
		return nil, err
	}

	barber, err := barberByQR(ctx, uc.repo, token)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientProfileByUser(ctx, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("client_profile_not_found", "Perfil de cliente no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	ap, err := uc.repo.FindPendingSurveyWithBarber(ctx, client.ID, barber.ID)
	if err != nil {
		return nil, fmt.Errorf("find pending survey: %w", err)
	}
	if ap == nil {
		return nil, httperr.NotFoundErr(
			"no_pending_survey",
			"No tienes citas pendientes de calificación con este barbero.",
		)
	}

	if domain.EnsureSurveyToken(ap) {
		if err := uc.repo.SetSurveyToken(ctx, ap.ID, ap.SurveyToken); err != nil {
			return nil, fmt.Errorf("backfill survey token: %w", err)
		}
	}

	return &PendingAppointment{
		ID:          ap.ID,
		StartTime:   ap.StartTime,
		Service:     ap.ServiceName(),
		Barber:      barber.User.DisplayName(),
		SurveyToken: ap.SurveyToken,
	}, nil
}

// ======================================================
// Barber QR (admin or the barber)
// ======================================================

type BarberQR struct {
	BarberID   uint   `json:"barbero_id"`
	BarberName string `json:"barbero_nombre"`
	Token      string `json:"qr_token"`
	URL        string `json:"qr_url"`
}

type GetBarberQR struct {
	repo        Repository
	frontendURL string
}

func NewGetBarberQR(repo Repository, frontendURL string) *GetBarberQR {
	return &GetBarberQR{repo: repo, frontendURL: strings.TrimRight(frontendURL, "/")}
}

// Execute returns the barber's QR, issuing one first if the profile has none.
func (uc *GetBarberQR) Execute(ctx context.Context, p auth.Principal, barberID uint) (*BarberQR, error) {
	if err := auth.Authorize(p, auth.ActionViewBarberQR); err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("barber_not_found", "Barbero no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get barber: %w", err)
	}

	if err := auth.AuthorizeOwner(p, auth.ActionViewBarberQR, barber.UserID); err != nil {
		return nil, err
	}

	if barber.QRToken == nil || *barber.QRToken == "" {
		token, err := auth.NewQRToken()
		if err != nil {
			return nil, fmt.Errorf("issue qr token: %w", err)
		}
		if err := uc.repo.SetQRToken(ctx, barber.ID, token); err != nil {
			return nil, fmt.Errorf("save qr token: %w", err)
		}
		barber.QRToken = &token
	}

	return &BarberQR{
		BarberID:   barber.ID,
		BarberName: barber.User.DisplayName(),
		Token:      *barber.QRToken,
		URL:        uc.frontendURL + "/encuesta/qr/" + *barber.QRToken,
	}, nil
}

func barberByQR(ctx context.Context, repo Repository, token string) (*models.BarberProfile, error) {
	barber, err := repo.GetActiveBarberByQRToken(ctx, strings.TrimSpace(token))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("invalid_qr", "Código QR inválido.")
	}
	if err != nil {
		return nil, fmt.Errorf("get barber by qr: %w", err)
	}
	return barber, nil
}
