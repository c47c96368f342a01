package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
)

type Login struct {
	repo   Repository
	tokens TokenIssuer
}

func NewLogin(repo Repository, tokens TokenIssuer) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute accepts either the username or the email as login.
func (uc *Login) Execute(ctx context.Context, login, password string) (*Session, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, httperr.InvalidInput("missing_fields", "Usuario y contraseña son obligatorios.")
	}

	user, err := uc.repo.FindUserByLogin(ctx, login)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		return nil, invalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}

	role, err := auth.ParseRole(user.Role)
	if err != nil {
		return nil, fmt.Errorf("user %d has role %q: %w", user.ID, user.Role, err)
	}

	token, err := uc.tokens.Issue(auth.Principal{UserID: user.ID, Role: role})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	acc, err := loadAccount(ctx, uc.repo, user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, Account: acc}, nil
}

func invalidCredentials() error {
	return httperr.UnauthorizedErr("invalid_credentials", "Credenciales inválidas.")
}
