package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository. WithinTx serializes
// transactions and restores the previous state when fn fails.
type fakeRepo struct {
	mu   sync.Mutex
	txMu sync.Mutex

	barbers  map[uint]*models.BarberProfile
	services map[uint]*models.Service
	packages map[uint]*models.Package
	products map[uint]*models.Product
	clients  map[uint]*models.ClientProfile

	appointments []models.Appointment
	alerts       []models.AppointmentAlert
	nextID       uint

	failCreateAlert       error
	failCreateAppointment error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:  map[uint]*models.BarberProfile{},
		services: map[uint]*models.Service{},
		packages: map[uint]*models.Package{},
		products: map[uint]*models.Product{},
		clients:  map[uint]*models.ClientProfile{},
		nextID:   100,
	}
}

type fakeSnapshot struct {
	appointments []models.Appointment
	alerts       []models.AppointmentAlert
	clients      map[uint]models.ClientProfile
}

func (f *fakeRepo) snapshot() fakeSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := fakeSnapshot{
		appointments: append([]models.Appointment(nil), f.appointments...),
		alerts:       append([]models.AppointmentAlert(nil), f.alerts...),
		clients:      map[uint]models.ClientProfile{},
	}
	for id, c := range f.clients {
		s.clients[id] = *c
	}
	return s
}

func (f *fakeRepo) restore(s fakeSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments = s.appointments
	f.alerts = s.alerts
	for id, c := range s.clients {
		c := c
		f.clients[id] = &c
	}
}

func (f *fakeRepo) WithinTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

// -------- Barber --------

func (f *fakeRepo) GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.barbers[barberID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetBarberByUser(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.barbers {
		if b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) LockBarber(ctx context.Context, barberID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.barbers[barberID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

// -------- Catalog --------

func (f *fakeRepo) GetActiveService(ctx context.Context, serviceID uint) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.services[serviceID]
	if !ok || !s.Active {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) GetActivePackage(ctx context.Context, packageID uint) (*models.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.packages[packageID]
	if !ok || !p.Active {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) ListActiveProducts(ctx context.Context, ids []uint) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.Active {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------- Client --------

func (f *fakeRepo) GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.clients {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) LockClient(ctx context.Context, clientID uint) (*models.ClientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.clients[clientID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) FindPendingSurvey(ctx context.Context, clientID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found *models.Appointment
	for i := range f.appointments {
		ap := f.appointments[i]
		if ap.ClientID == nil || *ap.ClientID != clientID {
			continue
		}
		if ap.Status != string(domain.StatusCompleted) || ap.SurveyCompleted {
			continue
		}
		if found == nil || ap.StartTime.After(found.StartTime) {
			cp := ap
			found = &cp
		}
	}
	if found != nil {
		if b, ok := f.barbers[found.BarberID]; ok {
			found.Barber = *b
		}
	}
	return found, nil
}

func (f *fakeRepo) ResetLoyalty(ctx context.Context, clientID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.clients[clientID]
	if !ok {
		return domain.ErrNotFound
	}
	c.CompletedServices = 0
	return nil
}

func (f *fakeRepo) IncrementLoyalty(ctx context.Context, clientID uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.clients[clientID]
	if !ok {
		return domain.ErrNotFound
	}
	c.CompletedServices++
	c.LastServiceAt = &at
	return nil
}

// -------- Appointment --------

func (f *fakeRepo) ListOccupyingAppointments(ctx context.Context, barberID uint, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID || !domain.Status(ap.Status).Occupies() {
			continue
		}
		if ap.StartTime.Before(from) || !ap.StartTime.Before(to) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (f *fakeRepo) ClientHasAppointmentAt(ctx context.Context, clientID uint, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.ClientID != nil && *ap.ClientID == clientID &&
			ap.StartTime.Equal(at) && domain.Status(ap.Status).Occupies() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreateAppointment != nil {
		return f.failCreateAppointment
	}

	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) CreateAlert(ctx context.Context, alert *models.AppointmentAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreateAlert != nil {
		return f.failCreateAlert
	}
	f.nextID++
	alert.ID = f.nextID
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.ID == appointmentID {
			cp := ap
			if b, ok := f.barbers[ap.BarberID]; ok {
				cp.Barber = *b
			}
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, barberID uint, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && !ap.StartTime.Before(from) && ap.StartTime.Before(to) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

// -------- helpers --------

func (f *fakeRepo) appointmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appointments)
}

func (f *fakeRepo) alertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.alerts)
}

func (f *fakeRepo) client(id uint) models.ClientProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.clients[id]
}

func (f *fakeRepo) add(ap models.Appointment) models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	ap.ID = f.nextID
	f.appointments = append(f.appointments, ap)
	return ap
}

var _ domain.Repository = (*fakeRepo)(nil)
