package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// notFound folds gorm's sentinel into the domain one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetBarberByUser(
	ctx context.Context,
	userID uint,
) (*models.BarberProfile, error) {

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&barber).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) LockBarber(
	ctx context.Context,
	barberID uint,
) error {

	var barber models.BarberProfile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", barberID).
		First(&barber).Error
	return notFound(err)
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetActiveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", serviceID, true).
		First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetActivePackage(
	ctx context.Context,
	packageID uint,
) (*models.Package, error) {

	var pkg models.Package
	if err := r.db.WithContext(ctx).
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("services.id ASC")
		}).
		Preload("Products").
		Where("id = ? AND active = ?", packageID, true).
		First(&pkg).Error; err != nil {
		return nil, notFound(err)
	}
	return &pkg, nil
}

func (r *AppointmentGormRepository) ListActiveProducts(
	ctx context.Context,
	ids []uint,
) ([]models.Product, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// --------------------------------------------------
// Client / loyalty / survey gate
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClientProfileByUser(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {

	var profile models.ClientProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *AppointmentGormRepository) LockClient(
	ctx context.Context,
	clientID uint,
) (*models.ClientProfile, error) {

	var profile models.ClientProfile
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", clientID).
		First(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *AppointmentGormRepository) FindPendingSurvey(
	ctx context.Context,
	clientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Barber.User").
		Preload("Service").
		Preload("Package").
		Where(
			"client_id = ? AND status = ? AND survey_completed = ?",
			clientID, string(domain.StatusCompleted), false,
		).
		Order("start_time DESC").
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ResetLoyalty(
	ctx context.Context,
	clientID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.ClientProfile{}).
		Where("id = ?", clientID).
		Update("completed_services", 0).Error
}

func (r *AppointmentGormRepository) IncrementLoyalty(
	ctx context.Context,
	clientID uint,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.ClientProfile{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"completed_services": gorm.Expr("completed_services + 1"),
			"last_service_at":    at,
		}).Error
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupyingAppointments(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "duration_min", "status").
		Where(
			"barber_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			barberID, domain.OccupyingStatuses(), from, to,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ClientHasAppointmentAt(
	ctx context.Context,
	clientID uint,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND start_time = ? AND status IN ?",
			clientID, at, domain.OccupyingStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAppointment inserts the row and its product links. Product rows
// themselves are never upserted.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit("Client", "Barber", "Service", "Package", "Products.*").
		Create(ap).Error
}

func (r *AppointmentGormRepository) CreateAlert(
	ctx context.Context,
	alert *models.AppointmentAlert,
) error {
	return r.db.WithContext(ctx).Omit("Appointment").Create(alert).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber.User").
		Preload("Client.User").
		Preload("Service").
		Preload("Package").
		First(&ap, appointmentID).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client.User").
		Preload("Service").
		Preload("Package").
		Preload("Products").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			from,
			to,
		).
		Order("start_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
