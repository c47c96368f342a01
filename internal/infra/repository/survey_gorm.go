package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/usecase/survey"
)

type SurveyGormRepository struct {
	db *gorm.DB
}

func NewSurveyGormRepository(db *gorm.DB) *SurveyGormRepository {
	return &SurveyGormRepository{db: db}
}

func (r *SurveyGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx survey.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SurveyGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Survey
// --------------------------------------------------

func (r *SurveyGormRepository) GetAppointmentBySurveyToken(
	ctx context.Context,
	token string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber.User").
		Preload("Client.User").
		Preload("Service").
		Preload("Package").
		Where("survey_token = ?", token).
		First(&ap).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *SurveyGormRepository) GetSurveyByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Survey, error) {

	var s models.Survey
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *SurveyGormRepository) SaveSurvey(ctx context.Context, s *models.Survey) error {
	return r.db.WithContext(ctx).
		Omit("Appointment").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rating",
				"cleanliness_rating",
				"punctuality_rating",
				"treatment_rating",
				"would_recommend",
				"comments",
			}),
		}).
		Create(s).Error
}

func (r *SurveyGormRepository) SaveTestimonial(ctx context.Context, t *models.Testimonial) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"client_name",
				"text",
				"rating",
				"service_received",
				"active",
			}),
		}).
		Create(t).Error
}

func (r *SurveyGormRepository) MarkSurveyCompleted(ctx context.Context, appointmentID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("survey_completed", true).Error
}

// SetSurveyToken only fills an empty token.
func (r *SurveyGormRepository) SetSurveyToken(ctx context.Context, appointmentID uint, token string) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND (survey_token IS NULL OR survey_token = '')", appointmentID).
		Update("survey_token", token).Error
}

// --------------------------------------------------
// QR
// --------------------------------------------------

func (r *SurveyGormRepository) GetActiveBarberByQRToken(
	ctx context.Context,
	token string,
) (*models.BarberProfile, error) {

	if token == "" {
		return nil, domain.ErrNotFound
	}

	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("qr_token = ? AND active = ?", token, true).
		First(&barber).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *SurveyGormRepository) GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	var barber models.BarberProfile
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, barberID).Error; err != nil {
		return nil, notFound(err)
	}
	return &barber, nil
}

func (r *SurveyGormRepository) SetQRToken(ctx context.Context, barberID uint, token string) error {
	return r.db.WithContext(ctx).
		Model(&models.BarberProfile{}).
		Where("id = ?", barberID).
		Update("qr_token", token).Error
}

func (r *SurveyGormRepository) GetClientProfileByUser(
	ctx context.Context,
	userID uint,
) (*models.ClientProfile, error) {

	var profile models.ClientProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (r *SurveyGormRepository) FindPendingSurveyWithBarber(
	ctx context.Context,
	clientID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Package").
		Where(
			"client_id = ? AND barber_id = ? AND status = ? AND survey_completed = ?",
			clientID, barberID, string(domain.StatusCompleted), false,
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

var _ survey.Repository = (*SurveyGormRepository)(nil)
