package account

import (
	"context"
	"strings"
	"sync"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

type fakeRepo struct {
	mu      sync.Mutex
	users   []models.User
	clients []models.ClientProfile
	barbers []models.BarberProfile
	nextID  uint

	failBarber error
}

func (f *fakeRepo) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	f.mu.Lock()
	users := append([]models.User(nil), f.users...)
	clients := append([]models.ClientProfile(nil), f.clients...)
	barbers := append([]models.BarberProfile(nil), f.barbers...)
	f.mu.Unlock()

	if err := fn(f); err != nil {
		f.mu.Lock()
		f.users, f.clients, f.barbers = users, clients, barbers
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeRepo) UserExists(ctx context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeRepo) CreateClientProfile(ctx context.Context, p *models.ClientProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.ID = f.nextID
	f.clients = append(f.clients, *p)
	return nil
}

func (f *fakeRepo) CreateBarberProfile(ctx context.Context, p *models.BarberProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBarber != nil {
		return f.failBarber
	}
	f.nextID++
	p.ID = f.nextID
	f.barbers = append(f.barbers, *p)
	return nil
}

func (f *fakeRepo) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			cp := u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			cp := u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) ListUsers(ctx context.Context, role string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.clients {
		if p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) GetBarberByUser(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.barbers {
		if p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ Repository = (*fakeRepo)(nil)
