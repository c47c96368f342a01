package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type fakeRepo struct {
	barbers  map[uint]*models.BarberProfile
	services []models.Service
	query    string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{barbers: map[uint]*models.BarberProfile{
		1: {
			ID: 1, UserID: 10, User: models.User{Username: "carlos", FirstName: "Carlos"},
			StartTime: "09:00", EndTime: "20:00", WorkingDays: `"[\"1\",\"2\",\"3\"]"`, Active: true,
		},
	}}
}

func (f *fakeRepo) ListBarbers(ctx context.Context, query string) ([]models.BarberProfile, error) {
	f.query = query
	var out []models.BarberProfile
	for _, b := range f.barbers {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) ListServices(ctx context.Context, query string) ([]models.Service, error) {
	f.query = query
	var out []models.Service
	for _, s := range f.services {
		if query == "" || strings.Contains(strings.ToLower(s.Name), query) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListPackages(ctx context.Context, query string) ([]models.Package, error) {
	return nil, nil
}

func (f *fakeRepo) ListProducts(ctx context.Context, query string) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeRepo) CreateService(ctx context.Context, s *models.Service) error {
	s.ID = uint(len(f.services) + 1)
	f.services = append(f.services, *s)
	return nil
}

func (f *fakeRepo) GetBarber(ctx context.Context, barberID uint) (*models.BarberProfile, error) {
	b, ok := f.barbers[barberID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) UpdateBarberSchedule(ctx context.Context, barberID uint, start, end, days string) error {
	b := f.barbers[barberID]
	b.StartTime, b.EndTime, b.WorkingDays = start, end, days
	return nil
}

var (
	admin       = auth.Principal{UserID: 1, Role: auth.RoleAdmin}
	owner       = auth.Principal{UserID: 10, Role: auth.RoleBarber}
	otherBarber = auth.Principal{UserID: 11, Role: auth.RoleBarber}
)

func TestCatalog_BarbersNormalizesDays(t *testing.T) {
	repo := newFakeRepo()

	barbers, err := NewCatalog(repo).Barbers(context.Background(), "  CARLOS ")
	require.NoError(t, err)
	require.Len(t, barbers, 1)

	assert.Equal(t, "carlos", repo.query)
	assert.Equal(t, "Carlos", barbers[0].Name)
	assert.Equal(t, []int{1, 2, 3}, barbers[0].WorkingDays)
}

func TestCreateService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateService(repo)

	s, err := uc.Execute(context.Background(), admin, CreateServiceInput{Name: " Corte ", Price: 200, DurationMin: 45})
	require.NoError(t, err)
	assert.Equal(t, "Corte", s.Name)
	assert.True(t, s.Active)

	services, err := NewCatalog(repo).Services(context.Background(), "cor")
	require.NoError(t, err)
	assert.Len(t, services, 1)

	_, err = uc.Execute(context.Background(), admin, CreateServiceInput{Name: "Corte", DurationMin: 0})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))

	_, err = uc.Execute(context.Background(), owner, CreateServiceInput{Name: "Corte", DurationMin: 30})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestUpdateSchedule(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateSchedule(repo, audit.Nop{})

	view, err := uc.Execute(context.Background(), UpdateScheduleInput{
		Principal:   owner,
		BarberID:    1,
		StartTime:   "10:00",
		WorkingDays: `["lunes", "7", 3]`,
	})
	require.NoError(t, err)

	assert.Equal(t, "10:00", view.StartTime)
	assert.Equal(t, "20:00", view.EndTime)
	assert.Equal(t, []int{0, 1, 3}, view.WorkingDays)
	assert.Equal(t, "[0,1,3]", repo.barbers[1].WorkingDays)

	got, err := NewGetSchedule(repo).Execute(context.Background(), admin, 1)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestUpdateSchedule_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		in       UpdateScheduleInput
		wantCode string
	}{
		{"other barber", UpdateScheduleInput{Principal: otherBarber, BarberID: 1}, "forbidden"},
		{"client", UpdateScheduleInput{Principal: auth.Principal{UserID: 20, Role: auth.RoleClient}, BarberID: 1}, "forbidden"},
		{"unknown barber", UpdateScheduleInput{Principal: admin, BarberID: 9}, "barber_not_found"},
		{"inverted window", UpdateScheduleInput{Principal: admin, BarberID: 1, StartTime: "18:00", EndTime: "09:00"}, "invalid_working_window"},
		{"bad clock", UpdateScheduleInput{Principal: admin, BarberID: 1, StartTime: "9am"}, "invalid_time"},
		{"bad day", UpdateScheduleInput{Principal: admin, BarberID: 1, WorkingDays: `[1, "funday"]`}, "invalid_working_days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			_, err := NewUpdateSchedule(repo, audit.Nop{}).Execute(context.Background(), tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
			assert.Equal(t, "09:00", repo.barbers[1].StartTime)
		})
	}
}
