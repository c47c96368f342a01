package account

import (
	"context"

	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/models"
)

type Repository interface {
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	UserExists(ctx context.Context, username, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateClientProfile(ctx context.Context, profile *models.ClientProfile) error
	CreateBarberProfile(ctx context.Context, profile *models.BarberProfile) error

	// FindUserByLogin matches login against the username or the email.
	FindUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUser(ctx context.Context, userID uint) (*models.User, error)
	ListUsers(ctx context.Context, role string) ([]models.User, error)

	GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error)
	GetBarberByUser(ctx context.Context, userID uint) (*models.BarberProfile, error)
}

type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

// EmailValidator reports whether an address looks deliverable.
type EmailValidator func(email string) bool
