package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/usecase/alert"
)

type AlertGormRepository struct {
	db *gorm.DB
}

func NewAlertGormRepository(db *gorm.DB) *AlertGormRepository {
	return &AlertGormRepository{db: db}
}

func (r *AlertGormRepository) ListPending(
	ctx context.Context,
	since time.Time,
) ([]models.AppointmentAlert, error) {

	var alerts []models.AppointmentAlert
	err := r.db.WithContext(ctx).
		Joins("JOIN appointments ON appointments.id = appointment_alerts.appointment_id").
		Preload("Appointment.Barber.User").
		Preload("Appointment.Client.User").
		Preload("Appointment.Service").
		Preload("Appointment.Package").
		Where("appointment_alerts.sent = ?", false).
		Where("appointments.status IN ?", domain.OccupyingStatuses()).
		Where("appointments.start_time >= ?", since).
		Order("appointment_alerts.created_at DESC").
		Find(&alerts).Error

	return alerts, err
}

func (r *AlertGormRepository) GetAlert(
	ctx context.Context,
	alertID uint,
) (*models.AppointmentAlert, error) {

	var a models.AppointmentAlert
	if err := r.db.WithContext(ctx).First(&a, alertID).Error; err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *AlertGormRepository) MarkSent(
	ctx context.Context,
	alertID uint,
	at time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.AppointmentAlert{}).
		Where("id = ? AND sent = ?", alertID, false).
		Updates(map[string]any{
			"sent":    true,
			"sent_at": at,
		}).Error
}

var _ alert.Repository = (*AlertGormRepository)(nil)
