package account

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

const minPasswordLen = 6

const (
	defaultBarberStart = "09:00"
	defaultBarberEnd   = "18:00"
	defaultBarberDays  = "[1,2,3,4,5,6]"
)

type RegisterInput struct {
	// Actor is nil on the public sign-up path.
	Actor *auth.Principal

	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
	Specialty string
}

type RegisterAccount struct {
	repo             Repository
	tokens           TokenIssuer
	validEmail       EmailValidator
	audit            audit.Recorder
	logger           *zap.Logger
	loyaltyThreshold int
}

func NewRegisterAccount(
	repo Repository,
	tokens TokenIssuer,
	validEmail EmailValidator,
	audit audit.Recorder,
	logger *zap.Logger,
	loyaltyThreshold int,
) *RegisterAccount {
	return &RegisterAccount{
		repo:             repo,
		tokens:           tokens,
		validEmail:       validEmail,
		audit:            audit,
		logger:           logger,
		loyaltyThreshold: loyaltyThreshold,
	}
}

// Execute creates the user and its role profile in one transaction. Public
// callers only get client accounts and receive a session token; admins may
// create any role and get no token.
func (uc *RegisterAccount) Execute(ctx context.Context, in RegisterInput) (*Session, error) {

	// ======================================================
	// ROLE
	// ======================================================
	role := auth.RoleClient
	if in.Role != "" {
		r, err := auth.ParseRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = r
	}

	if in.Actor != nil {
		if err := auth.Authorize(*in.Actor, auth.ActionManageUsers); err != nil {
			return nil, err
		}
	} else if role != auth.RoleClient {
		return nil, httperr.Forbidden("forbidden", "Solo un administrador puede crear este tipo de cuenta.")
	}

	// ======================================================
	// FIELDS
	// ======================================================
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" || in.Password == "" {
		return nil, httperr.InvalidInput("missing_fields", "Usuario, email y contraseña son obligatorios.")
	}
	if len(in.Password) < minPasswordLen {
		return nil, httperr.InvalidInput("weak_password", "La contraseña debe tener al menos 6 caracteres.")
	}
	if !uc.validEmail(email) {
		return nil, httperr.InvalidInput("invalid_email_domain", "El dominio del email no parece ser válido.")
	}

	exists, err := uc.repo.UserExists(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if exists {
		return nil, userExists()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         string(role),
		Active:       true,
	}

	// ======================================================
	// COMMIT
	// ======================================================
	acc := &Account{}
	err = uc.repo.WithinTx(ctx, func(tx Repository) error {
		if err := tx.CreateUser(ctx, &user); err != nil {
			if httperr.IsUniqueViolation(err, "") {
				return userExists()
			}
			return fmt.Errorf("create user: %w", err)
		}

		switch role {
		case auth.RoleClient:
			p := &models.ClientProfile{
				UserID:             user.ID,
				PromotionThreshold: uc.loyaltyThreshold,
			}
			if err := tx.CreateClientProfile(ctx, p); err != nil {
				return fmt.Errorf("create client profile: %w", err)
			}
			acc.Client = p

		case auth.RoleBarber:
			qr, err := auth.NewQRToken()
			if err != nil {
				return fmt.Errorf("qr token: %w", err)
			}
			p := &models.BarberProfile{
				UserID:      user.ID,
				Specialty:   strings.TrimSpace(in.Specialty),
				StartTime:   defaultBarberStart,
				EndTime:     defaultBarberEnd,
				WorkingDays: defaultBarberDays,
				Active:      true,
				QRToken:     &qr,
			}
			if err := tx.CreateBarberProfile(ctx, p); err != nil {
				return fmt.Errorf("create barber profile: %w", err)
			}
			acc.Barber = p
		}
		return nil
	})
	if err != nil {
		if _, ok := httperr.AsBusiness(err); !ok {
			uc.logger.Error("register account failed", zap.String("username", username), zap.Error(err))
		}
		return nil, err
	}
	acc.User = user

	var actorID *uint
	if in.Actor != nil {
		actorID = &in.Actor.UserID
	} else {
		actorID = &user.ID
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   audit.ActionAccountCreated,
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"rol": string(role)},
	})

	session := &Session{Account: acc}
	if in.Actor == nil {
		token, err := uc.tokens.Issue(auth.Principal{UserID: user.ID, Role: role})
		if err != nil {
			return nil, fmt.Errorf("issue token: %w", err)
		}
		session.Token = token
	}
	return session, nil
}

func userExists() error {
	return httperr.InvalidInput("user_already_exists", "El usuario o email ya está registrado.")
}
