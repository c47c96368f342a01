package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	Commission  float64
	DurationMin int
	ImageURL    string
}

type CreateService struct {
	repo Repository
}

func NewCreateService(repo Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(ctx context.Context, p auth.Principal, in CreateServiceInput) (*models.Service, error) {
	if err := auth.Authorize(p, auth.ActionManageCatalog); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.InvalidInput("missing_fields", "El nombre del servicio es obligatorio.")
	}
	if in.Price < 0 || in.Commission < 0 {
		return nil, httperr.InvalidInput("invalid_price", "El precio no puede ser negativo.")
	}
	if in.DurationMin <= 0 {
		return nil, httperr.InvalidInput("invalid_duration", "La duración debe ser mayor a cero.")
	}

	s := &models.Service{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Commission:  in.Commission,
		DurationMin: in.DurationMin,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Active:      true,
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}
