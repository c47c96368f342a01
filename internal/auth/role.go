// Package auth holds the principal model, the authorization policy and the
// JWT codec used by the HTTP layer.
package auth

import (
	"strings"

	"github.com/barberrock/booking-api/internal/httperr"
)

type Role string

const (
	RoleClient Role = "cliente"
	RoleBarber Role = "barbero"
	RoleAdmin  Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleClient, RoleBarber, RoleAdmin:
		return r, nil
	}
	return "", httperr.InvalidInput("invalid_role", "Rol inválido.")
}

// Principal is the acting user of one request. It is always passed
// explicitly to use cases.
type Principal struct {
	UserID uint
	Role   Role
}
