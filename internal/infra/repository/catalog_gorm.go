package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/usecase/catalog"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// search applies the name/description substring filter.
func search(q *gorm.DB, query string) *gorm.DB {
	if query == "" {
		return q
	}
	like := "%" + query + "%"
	return q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
}

func (r *CatalogGormRepository) ListBarbers(
	ctx context.Context,
	query string,
) ([]models.BarberProfile, error) {

	var barbers []models.BarberProfile

	q := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = barber_profiles.user_id").
		Where("barber_profiles.active = ? AND users.active = ?", true, true)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(users.username) LIKE ? OR LOWER(barber_profiles.specialty) LIKE ?",
			like, like, like, like,
		)
	}

	err := q.Order("barber_profiles.id").Find(&barbers).Error
	return barbers, err
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	query string,
) ([]models.Service, error) {

	var services []models.Service
	q := search(r.db.WithContext(ctx).Where("active = ?", true), query)

	err := q.Order("name").Find(&services).Error
	return services, err
}

func (r *CatalogGormRepository) ListPackages(
	ctx context.Context,
	query string,
) ([]models.Package, error) {

	var packages []models.Package
	q := search(r.db.WithContext(ctx).Where("active = ?", true), query).
		Preload("Services", "active = ?", true).
		Preload("Products", "active = ?", true)

	err := q.Order("name").Find(&packages).Error
	return packages, err
}

func (r *CatalogGormRepository) ListProducts(
	ctx context.Context,
	query string,
) ([]models.Product, error) {

	var products []models.Product
	q := search(r.db.WithContext(ctx).Where("active = ?", true), query)

	err := q.Order("name").Find(&products).Error
	return products, err
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var b models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&b, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *CatalogGormRepository) UpdateBarberSchedule(
	ctx context.Context,
	barberID uint,
	start, end, days string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.BarberProfile{}).
		Where("id = ?", barberID).
		Updates(map[string]any{
			"start_time":   start,
			"end_time":     end,
			"working_days": days,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
