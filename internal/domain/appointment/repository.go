package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/barberrock/booking-api/internal/models"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// SurveyGate is the survey side of the loyalty/survey subsystem as seen by
// the booking validator.
type SurveyGate interface {
	// FindPendingSurvey returns the client's latest completed appointment
	// whose survey is not done, or nil.
	FindPendingSurvey(ctx context.Context, clientID uint) (*models.Appointment, error)
}

// LoyaltyLedger mutates the per-client loyalty counter.
type LoyaltyLedger interface {
	ResetLoyalty(ctx context.Context, clientID uint) error
	IncrementLoyalty(ctx context.Context, clientID uint, at time.Time) error
}

type Repository interface {
	SurveyGate
	LoyaltyLedger

	// WithinTx runs fn in one transaction; the Repository handed to fn is
	// bound to it. Returning an error rolls everything back.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Barber --------
	GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error)
	GetBarberByUser(ctx context.Context, userID uint) (*models.BarberProfile, error)

	// LockBarber serializes booking commits for one barber until the
	// surrounding transaction ends.
	LockBarber(ctx context.Context, barberID uint) error

	// -------- Catalog --------
	GetActiveService(ctx context.Context, serviceID uint) (*models.Service, error)
	GetActivePackage(ctx context.Context, packageID uint) (*models.Package, error)
	ListActiveProducts(ctx context.Context, ids []uint) ([]models.Product, error)

	// -------- Client --------
	GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error)

	// LockClient row-locks the client profile until the surrounding
	// transaction ends and returns its current loyalty state.
	LockClient(ctx context.Context, clientID uint) (*models.ClientProfile, error)

	// -------- Appointment (create / conflict) --------
	ListOccupyingAppointments(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	ClientHasAppointmentAt(ctx context.Context, clientID uint, at time.Time) (bool, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	CreateAlert(ctx context.Context, alert *models.AppointmentAlert) error

	// -------- Appointment (state change) --------
	GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	// -------- Agenda --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}
