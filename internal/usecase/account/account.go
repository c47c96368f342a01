package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/models"
)

// Account is a user together with its role profile.
type Account struct {
	User   models.User           `json:"user"`
	Client *models.ClientProfile `json:"perfil_cliente,omitempty"`
	Barber *models.BarberProfile `json:"perfil_barbero,omitempty"`
}

// Session is what a successful register or login hands back.
type Session struct {
	Token   string   `json:"token"`
	Account *Account `json:"usuario"`
}

// loadAccount attaches the profile matching the user's role.
func loadAccount(ctx context.Context, repo Repository, user *models.User) (*Account, error) {
	acc := &Account{User: *user}

	switch auth.Role(user.Role) {
	case auth.RoleClient:
		p, err := repo.GetClientProfileByUser(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get client profile: %w", err)
		}
		acc.Client = p
	case auth.RoleBarber:
		p, err := repo.GetBarberByUser(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get barber profile: %w", err)
		}
		acc.Barber = p
	}

	return acc, nil
}
