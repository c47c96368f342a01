package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/lock"
	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ContactOverride struct {
	Name  string
	Phone string
	Email string
}

type ScheduleAppointmentInput struct {
	Principal auth.Principal

	BarberID  uint
	ServiceID *uint
	PackageID *uint

	Date string
	Time string

	// DurationMin overrides the catalog duration when set.
	DurationMin *int

	Notes      string
	Contact    ContactOverride
	ProductIDs []uint
}

type ScheduleOptions struct {
	Location               *time.Location
	DefaultPackageDuration int
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  audit.Recorder
	log    *zap.Logger
	opts   ScheduleOptions
}

func NewScheduleAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit audit.Recorder,
	log *zap.Logger,
	opts ScheduleOptions,
) *ScheduleAppointment {
	if opts.DefaultPackageDuration <= 0 {
		opts.DefaultPackageDuration = 60
	}
	return &ScheduleAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		log:    log,
		opts:   opts,
	}
}

// booking is the validated request handed to commit.
type booking struct {
	client   *models.ClientProfile
	barber   *models.BarberProfile
	schedule domain.Schedule
	service  *models.Service
	pkg      *models.Package

	productIDs  []uint
	start       time.Time
	durationMin int
	contact     ContactOverride
	notes       string
	in          ScheduleAppointmentInput
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*models.Appointment, error) {

	b, err := uc.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	release, err := uc.locker.Acquire(ctx, lock.BookingKey(b.barber.ID, b.start))
	if errors.Is(err, lock.ErrBusy) {
		return nil, uc.conflict(ctx, b, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("acquire booking lock: %w", err)
	}
	defer release()

	ap, err := uc.commit(ctx, b)
	if err != nil {
		if httperr.IsUniqueViolation(err, domain.SlotUniqueIndex) {
			return nil, uc.conflict(ctx, b, nil)
		}
		if _, ok := httperr.AsBusiness(err); !ok {
			uc.log.Error("appointment commit failed",
				zap.Uint("barber_id", b.barber.ID),
				zap.Time("start", b.start),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id":        b.barber.ID,
			"start":            b.start,
			"duration_min":     b.durationMin,
			"loyalty_redeemed": ap.LoyaltyRedeemed,
		},
	})

	return ap, nil
}

// --------------------------------------------------
// Validation (no writes)
// --------------------------------------------------

func (uc *ScheduleAppointment) validate(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*booking, error) {

	// 1. Role
	if err := auth.Authorize(in.Principal, auth.ActionBookAppointment); err != nil {
		return nil, err
	}

	// 2. Required fields
	if (in.ServiceID == nil && in.PackageID == nil) || in.BarberID == 0 ||
		strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, httperr.InvalidInput(
			"missing_fields",
			"Servicio o paquete, barbero, fecha y hora son obligatorios.",
		)
	}

	// 3. Client profile
	client, err := uc.repo.GetClientProfileByUser(ctx, in.Principal.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr(
			"client_profile_not_found",
			"Perfil de cliente no encontrado. Contacta al administrador.",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	// 4. Survey gate
	pending, err := uc.repo.FindPendingSurvey(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("find pending survey: %w", err)
	}
	if pending != nil {
		return nil, httperr.PendingSurvey(
			"pending_survey",
			"Tienes una encuesta pendiente de una cita anterior.",
		).WithDetails(map[string]any{"cita_pendiente": dto.PendingSurvey(pending)})
	}

	b := &booking{
		client:     client,
		productIDs: dedupe(in.ProductIDs),
		notes:      in.Notes,
		in:         in,
	}

	// 5. Catalog
	if err := uc.resolveCatalog(ctx, in, b); err != nil {
		return nil, err
	}

	// 6. Barber
	if b.barber, err = activeBarber(ctx, uc.repo, in.BarberID); err != nil {
		return nil, err
	}

	// 7. Duration
	switch {
	case in.DurationMin != nil:
		b.durationMin = *in.DurationMin
	case b.service != nil:
		b.durationMin = b.service.DurationMin
	default:
		b.durationMin = uc.opts.DefaultPackageDuration
	}
	if b.durationMin <= 0 {
		return nil, httperr.InvalidInput("invalid_duration", "Duración inválida.")
	}

	// 8. Timestamp in the configured zone
	b.start, err = timezone.ParseDateTime(
		strings.TrimSpace(in.Date),
		strings.TrimSpace(in.Time),
		uc.opts.Location,
	)
	if err != nil {
		return nil, httperr.InvalidInput("invalid_date_or_time", "Formato de fecha u hora inválido.")
	}

	// 9. Working day
	if b.schedule, err = domain.ScheduleOf(b.barber); err != nil {
		return nil, err
	}
	if !b.schedule.WorksOn(b.start) {
		return nil, httperr.ScheduleConflict(
			"barber_not_working",
			"El barbero no labora durante la fecha seleccionada.",
		)
	}

	// 10. Contact
	b.contact = resolveContact(client.User, in.Contact)

	return b, nil
}

func (uc *ScheduleAppointment) resolveCatalog(
	ctx context.Context,
	in ScheduleAppointmentInput,
	b *booking,
) error {

	if in.ServiceID != nil {
		svc, err := uc.repo.GetActiveService(ctx, *in.ServiceID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFoundErr("service_not_found", "Servicio no encontrado o inactivo.")
		}
		if err != nil {
			return fmt.Errorf("get service: %w", err)
		}
		b.service = svc
	}

	if in.PackageID != nil {
		pkg, err := uc.repo.GetActivePackage(ctx, *in.PackageID)
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.NotFoundErr("package_not_found", "Paquete no encontrado o inactivo.")
		}
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		b.pkg = pkg

		for _, p := range pkg.Products {
			b.productIDs = append(b.productIDs, p.ID)
		}
		b.productIDs = dedupe(b.productIDs)

		if b.service == nil && len(pkg.Services) > 0 {
			first := pkg.Services[0]
			b.service = &first
		}
	}

	if b.service == nil && b.pkg == nil {
		return httperr.InvalidInput("missing_service", "Debe seleccionar un servicio o un paquete.")
	}
	return nil
}

// --------------------------------------------------
// Commit (one transaction)
// --------------------------------------------------

func (uc *ScheduleAppointment) commit(ctx context.Context, b *booking) (*models.Appointment, error) {
	var ap *models.Appointment

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {
		if err := tx.LockBarber(ctx, b.barber.ID); err != nil {
			return fmt.Errorf("lock barber: %w", err)
		}
		// Bookings of one client with different barbers meet here.
		client, err := tx.LockClient(ctx, b.client.ID)
		if err != nil {
			return fmt.Errorf("lock client: %w", err)
		}

		slots, err := freshSlots(ctx, tx, b, uc.opts.Location)
		if err != nil {
			return err
		}
		if _, ok := domain.FindSlot(slots, b.start); !ok {
			return uc.conflict(ctx, b, slots)
		}

		taken, err := tx.ClientHasAppointmentAt(ctx, b.client.ID, b.start)
		if err != nil {
			return fmt.Errorf("check client booking: %w", err)
		}
		if taken {
			return httperr.DuplicateClientBooking(
				"duplicate_booking",
				"Ya tienes una cita agendada en este horario.",
			)
		}

		products, err := tx.ListActiveProducts(ctx, b.productIDs)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}

		redeem := client.EligibleForPromotion() && b.service != nil && b.pkg == nil

		ap = b.appointment(products, redeem)
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		if redeem {
			if err := tx.ResetLoyalty(ctx, b.client.ID); err != nil {
				return fmt.Errorf("reset loyalty: %w", err)
			}
		}

		if err := tx.CreateAlert(ctx, &models.AppointmentAlert{AppointmentID: ap.ID}); err != nil {
			return fmt.Errorf("create alert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ap.Barber = *b.barber
	ap.Service = b.service
	ap.Package = b.pkg
	return ap, nil
}

func (b *booking) appointment(products []models.Product, redeem bool) *models.Appointment {
	clientID := b.client.ID

	var serviceID, packageID *uint
	if b.service != nil {
		id := b.service.ID
		serviceID = &id
	}
	if b.pkg != nil {
		id := b.pkg.ID
		packageID = &id
	}

	var email *string
	if b.contact.Email != "" {
		e := b.contact.Email
		email = &e
	}

	return &models.Appointment{
		ClientID:         &clientID,
		BarberID:         b.barber.ID,
		ServiceID:        serviceID,
		PackageID:        packageID,
		StartTime:        b.start,
		DurationMin:      b.durationMin,
		Status:           string(domain.InitialStatus()),
		Notes:            b.notes,
		ContactName:      b.contact.Name,
		ContactPhone:     b.contact.Phone,
		ContactEmail:     email,
		RegisteredClient: true,
		SurveyToken:      domain.NewSurveyToken(),
		LoyaltyRedeemed:  redeem,
		Products:         products,
	}
}

func freshSlots(
	ctx context.Context,
	repo domain.Repository,
	b *booking,
	loc *time.Location,
) ([]domain.Slot, error) {
	from, to := timezone.DayRange(b.start, loc)
	apps, err := repo.ListOccupyingAppointments(ctx, b.barber.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list occupying appointments: %w", err)
	}
	return domain.AvailableSlots(
		timezone.StartOfDay(b.start, loc),
		b.schedule.Window,
		b.durationMin,
		domain.OccupiedIntervals(apps),
	), nil
}

// conflict builds the retryable error. When slots is nil a fresh read is
// attempted outside the transaction.
func (uc *ScheduleAppointment) conflict(ctx context.Context, b *booking, slots []domain.Slot) error {
	if slots == nil {
		if fresh, err := freshSlots(ctx, uc.repo, b, uc.opts.Location); err == nil {
			slots = fresh
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.in.Principal.UserID,
		Action:   audit.ActionAppointmentConflict,
		Entity:   "barber",
		EntityID: &b.barber.ID,
		Metadata: map[string]any{"start": b.start},
	})

	return httperr.ScheduleConflict(
		"slot_unavailable",
		"El horario seleccionado ya no está disponible.",
	).WithDetails(dto.ConflictDetails{
		Date:     b.start.Format(timezone.DateLayout),
		Time:     b.start.Format(timezone.ClockLayout),
		BarberID: b.barber.ID,
		Slots:    dto.Slots(slots),
	})
}

// resolveContact starts from the account and applies non-empty overrides.
func resolveContact(user models.User, override ContactOverride) ContactOverride {
	c := ContactOverride{
		Name:  user.DisplayName(),
		Phone: user.Phone,
		Email: user.Email,
	}
	if v := strings.TrimSpace(override.Name); v != "" {
		c.Name = v
	}
	if v := strings.TrimSpace(override.Phone); v != "" {
		c.Phone = v
	}
	if v := strings.TrimSpace(override.Email); v != "" {
		c.Email = v
	}
	return c
}

func dedupe(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
