package catalog

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

type BarberView struct {
	ID          uint   `json:"id"`
	Name        string `json:"nombre"`
	Specialty   string `json:"especialidad"`
	Description string `json:"descripcion"`
	StartTime   string `json:"horario_inicio"`
	EndTime     string `json:"horario_fin"`
	WorkingDays []int  `json:"dias_laborales"`
}

func barberView(b models.BarberProfile) BarberView {
	days, _ := domain.ParseWorkingDays(b.WorkingDays)
	return BarberView{
		ID:          b.ID,
		Name:        b.User.DisplayName(),
		Specialty:   b.Specialty,
		Description: b.Description,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		WorkingDays: days.Ints(),
	}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Catalog serves the public read side of barbers, services, packages and
// products.
type Catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (uc *Catalog) Barbers(ctx context.Context, query string) ([]BarberView, error) {
	barbers, err := uc.repo.ListBarbers(ctx, normalizeQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list barbers: %w", err)
	}

	out := make([]BarberView, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, barberView(b))
	}
	return out, nil
}

func (uc *Catalog) Services(ctx context.Context, query string) ([]models.Service, error) {
	services, err := uc.repo.ListServices(ctx, normalizeQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (uc *Catalog) Packages(ctx context.Context, query string) ([]models.Package, error) {
	packages, err := uc.repo.ListPackages(ctx, normalizeQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (uc *Catalog) Products(ctx context.Context, query string) ([]models.Product, error) {
	products, err := uc.repo.ListProducts(ctx, normalizeQuery(query))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
