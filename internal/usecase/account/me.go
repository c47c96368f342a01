package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type Me struct {
	repo Repository
}

func NewMe(repo Repository) *Me {
	return &Me{repo: repo}
}

func (uc *Me) Execute(ctx context.Context, p auth.Principal) (*Account, error) {
	if err := auth.Authorize(p, auth.ActionViewOwnProfile); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetUser(ctx, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("user_not_found", "Usuario no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return loadAccount(ctx, uc.repo, user)
}

type ListUsers struct {
	repo Repository
}

func NewListUsers(repo Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute lists every user, optionally restricted to one role.
func (uc *ListUsers) Execute(ctx context.Context, p auth.Principal, role string) ([]models.User, error) {
	if err := auth.Authorize(p, auth.ActionManageUsers); err != nil {
		return nil, err
	}

	if role = strings.TrimSpace(role); role != "" {
		r, err := auth.ParseRole(role)
		if err != nil {
			return nil, err
		}
		role = string(r)
	}

	users, err := uc.repo.ListUsers(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
