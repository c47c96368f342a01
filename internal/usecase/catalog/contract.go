package catalog

import (
	"context"

	"github.com/barberrock/booking-api/internal/models"
)

// Repository lists only active catalog entries. query, when non-empty, is
// a lowercase substring matched against names and descriptions.
type Repository interface {
	ListBarbers(ctx context.Context, query string) ([]models.BarberProfile, error)
	ListServices(ctx context.Context, query string) ([]models.Service, error)
	ListPackages(ctx context.Context, query string) ([]models.Package, error)
	ListProducts(ctx context.Context, query string) ([]models.Product, error)

	CreateService(ctx context.Context, s *models.Service) error

	GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error)
	UpdateBarberSchedule(ctx context.Context, barberID uint, start, end, days string) error
}
