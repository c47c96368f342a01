package survey

import (
	"context"
	"sync"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

type fakeRepo struct {
	mu sync.Mutex

	appointments map[uint]*models.Appointment
	surveys      map[uint]*models.Survey
	testimonials map[uint]*models.Testimonial
	barbers      map[uint]*models.BarberProfile
	clients      map[uint]*models.ClientProfile

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		surveys:      map[uint]*models.Survey{},
		testimonials: map[uint]*models.Testimonial{},
		barbers:      map[uint]*models.BarberProfile{},
		clients:      map[uint]*models.ClientProfile{},
		nextID:       500,
	}
}

func (f *fakeRepo) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) GetAppointmentBySurveyToken(ctx context.Context, token string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.appointments {
		if ap.SurveyToken != "" && ap.SurveyToken == token {
			cp := *ap
			if b, ok := f.barbers[ap.BarberID]; ok {
				cp.Barber = *b
			}
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetSurveyByAppointment(ctx context.Context, appointmentID uint) (*models.Survey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.surveys[appointmentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) SaveSurvey(ctx context.Context, s *models.Survey) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.surveys[s.AppointmentID]; ok {
		s.ID = existing.ID
	} else {
		f.nextID++
		s.ID = f.nextID
	}
	cp := *s
	f.surveys[s.AppointmentID] = &cp
	return nil
}

func (f *fakeRepo) SaveTestimonial(ctx context.Context, t *models.Testimonial) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *t
	f.testimonials[*t.AppointmentID] = &cp
	return nil
}

func (f *fakeRepo) MarkSurveyCompleted(ctx context.Context, appointmentID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments[appointmentID].SurveyCompleted = true
	return nil
}

func (f *fakeRepo) SetSurveyToken(ctx context.Context, appointmentID uint, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.appointments[appointmentID].SurveyToken = token
	return nil
}

func (f *fakeRepo) GetActiveBarberByQRToken(ctx context.Context, token string) (*models.BarberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.barbers {
		if b.Active && b.QRToken != nil && *b.QRToken == token {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

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

func (f *fakeRepo) SetQRToken(ctx context.Context, barberID uint, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.barbers[barberID].QRToken = &token
	return nil
}

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

func (f *fakeRepo) FindPendingSurveyWithBarber(ctx context.Context, clientID, barberID uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found *models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == nil || *ap.ClientID != clientID || ap.BarberID != barberID {
			continue
		}
		if ap.Status != string(domain.StatusCompleted) || ap.SurveyCompleted {
			continue
		}
		if found == nil || ap.StartTime.After(found.StartTime) {
			cp := *ap
			found = &cp
		}
	}
	return found, nil
}

var _ Repository = (*fakeRepo)(nil)
