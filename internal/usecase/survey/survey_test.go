package survey

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
func uintPtr(v uint) *uint { return &v }

func seeded() *fakeRepo {
	f := newFakeRepo()

	qr := "qr-1"
	f.barbers[1] = &models.BarberProfile{
		ID:      1,
		UserID:  10,
		User:    models.User{ID: 10, Username: "carlos", FirstName: "Carlos"},
		Active:  true,
		QRToken: &qr,
	}
	f.barbers[2] = &models.BarberProfile{ID: 2, UserID: 11, User: models.User{ID: 11, Username: "luis"}, Active: true}

	f.clients[1] = &models.ClientProfile{
		ID:     1,
		UserID: 20,
		User:   models.User{ID: 20, Username: "ana", FirstName: "Ana", Email: "ana@example.com"},
	}

	f.appointments[100] = &models.Appointment{
		ID:          100,
		ClientID:    uintPtr(1),
		Client:      f.clients[1],
		BarberID:    1,
		Service:     &models.Service{ID: 1, Name: "Corte", DurationMin: 45},
		StartTime:   time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		DurationMin: 45,
		Status:      string(domain.StatusCompleted),
		SurveyToken: "tok-100",
	}
	f.appointments[101] = &models.Appointment{
		ID:          101,
		ClientID:    uintPtr(1),
		BarberID:    1,
		StartTime:   time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		DurationMin: 45,
		Status:      string(domain.StatusCompleted),
	}
	return f
}

func TestGetInfo(t *testing.T) {
	repo := seeded()

	info, err := NewGetInfo(repo).Execute(context.Background(), "tok-100")
	require.NoError(t, err)
	assert.Equal(t, uint(100), info.AppointmentID)
	assert.Equal(t, "Ana", info.ClientName)
	assert.Equal(t, "ana@example.com", info.ClientEmail)
	assert.Equal(t, "Carlos", info.Barber.Name)
	assert.Equal(t, "Corte", info.Service.Name)
	require.NotNil(t, info.Service.DurationMin)
	assert.Equal(t, 45, *info.Service.DurationMin)
	assert.False(t, info.HasSurvey)
	assert.Nil(t, info.Survey)

	_, err = NewGetInfo(repo).Execute(context.Background(), "")
	assert.True(t, httperr.IsBusiness(err, "missing_token"))

	_, err = NewGetInfo(repo).Execute(context.Background(), "nope")
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestSubmit(t *testing.T) {
	repo := seeded()
	uc := NewSubmit(repo, audit.Nop{})

	s, err := uc.Execute(context.Background(), SubmitInput{
		Token:       "tok-100",
		Rating:      intPtr(4),
		Cleanliness: intPtr(9),
		Punctuality: intPtr(-1),
		Comments:    "  Excelente  ",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Rating)
	assert.Equal(t, 5, s.CleanlinessRating)
	assert.Equal(t, 1, s.PunctualityRating)
	assert.Equal(t, 5, s.TreatmentRating)
	assert.True(t, s.WouldRecommend)
	assert.Equal(t, "Excelente", s.Comments)

	assert.True(t, repo.appointments[100].SurveyCompleted)

	testimonial := repo.testimonials[100]
	require.NotNil(t, testimonial)
	assert.False(t, testimonial.Active)
	assert.Equal(t, "Excelente", testimonial.Text)
	assert.Equal(t, "Corte", testimonial.ServiceReceived)

	info, err := NewGetInfo(repo).Execute(context.Background(), "tok-100")
	require.NoError(t, err)
	assert.True(t, info.HasSurvey)

	// Resubmission overwrites the same survey.
	again, err := uc.Execute(context.Background(), SubmitInput{
		Token:          "tok-100",
		Rating:         intPtr(2),
		WouldRecommend: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, s.ID, again.ID)
	assert.False(t, again.WouldRecommend)
	assert.Equal(t, defaultTestimonial, repo.testimonials[100].Text)
}

func TestSubmit_InvalidRating(t *testing.T) {
	repo := seeded()
	uc := NewSubmit(repo, audit.Nop{})

	for _, rating := range []*int{nil, intPtr(0), intPtr(6)} {
		_, err := uc.Execute(context.Background(), SubmitInput{Token: "tok-100", Rating: rating})
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"))
	}
	assert.False(t, repo.appointments[100].SurveyCompleted)
}

func TestSubmit_RequiresCompletedAppointment(t *testing.T) {
	repo := seeded()
	repo.appointments[102] = &models.Appointment{
		ID:          102,
		ClientID:    uintPtr(1),
		BarberID:    1,
		StartTime:   time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC),
		DurationMin: 45,
		Status:      string(domain.StatusRequested),
		SurveyToken: "tok-102",
	}

	_, err := NewSubmit(repo, audit.Nop{}).Execute(context.Background(), SubmitInput{
		Token:  "tok-102",
		Rating: intPtr(5),
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_completed"))
	assert.False(t, repo.appointments[102].SurveyCompleted)
	assert.Nil(t, repo.testimonials[102])
}

func TestPendingByQR(t *testing.T) {
	repo := seeded()
	client := auth.Principal{UserID: 20, Role: auth.RoleClient}

	pending, err := NewPendingByQR(repo).Execute(context.Background(), client, "qr-1")
	require.NoError(t, err)

	// Latest unsurveyed appointment, token backfilled.
	assert.Equal(t, uint(101), pending.ID)
	assert.Len(t, pending.SurveyToken, 32)
	assert.Equal(t, pending.SurveyToken, repo.appointments[101].SurveyToken)
	assert.Equal(t, "N/A", pending.Service)

	_, err = NewPendingByQR(repo).Execute(context.Background(), client, "bad")
	assert.True(t, httperr.IsBusiness(err, "invalid_qr"))

	_, err = NewPendingByQR(repo).Execute(context.Background(), auth.Principal{UserID: 10, Role: auth.RoleBarber}, "qr-1")
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	repo.appointments[100].SurveyCompleted = true
	repo.appointments[101].SurveyCompleted = true
	_, err = NewPendingByQR(repo).Execute(context.Background(), client, "qr-1")
	assert.True(t, httperr.IsBusiness(err, "no_pending_survey"))
}

func TestScanQR(t *testing.T) {
	repo := seeded()

	ref, err := NewScanQR(repo).Execute(context.Background(), "qr-1")
	require.NoError(t, err)
	assert.Equal(t, "Carlos", ref.Name)
}

func TestGetBarberQR(t *testing.T) {
	repo := seeded()
	uc := NewGetBarberQR(repo, "https://barberrock.mx/")

	qr, err := uc.Execute(context.Background(), auth.Principal{UserID: 10, Role: auth.RoleBarber}, 1)
	require.NoError(t, err)
	assert.Equal(t, "qr-1", qr.Token)
	assert.Equal(t, "https://barberrock.mx/encuesta/qr/qr-1", qr.URL)

	_, err = uc.Execute(context.Background(), auth.Principal{UserID: 10, Role: auth.RoleBarber}, 2)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))

	// Admin view of a barber without a token issues one.
	qr, err = uc.Execute(context.Background(), auth.Principal{UserID: 1, Role: auth.RoleAdmin}, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, qr.Token)
	require.NotNil(t, repo.barbers[2].QRToken)
	assert.Equal(t, qr.Token, *repo.barbers[2].QRToken)
}
