package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type ProfileReader interface {
	GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error)
}

type Promotions struct {
	CompletedServices int  `json:"cortes_realizados"`
	Threshold         int  `json:"cortes_para_promocion"`
	Remaining         int  `json:"cortes_restantes"`
	Eligible          bool `json:"es_elegible"`
}

type GetPromotions struct {
	repo ProfileReader
}

func NewGetPromotions(repo ProfileReader) *GetPromotions {
	return &GetPromotions{repo: repo}
}

func (uc *GetPromotions) Execute(ctx context.Context, p auth.Principal) (*Promotions, error) {
	if err := auth.Authorize(p, auth.ActionViewPromotions); err != nil {
		return nil, err
	}

	profile, err := uc.repo.GetClientProfileByUser(ctx, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFoundErr("client_profile_not_found", "Perfil de cliente no encontrado.")
	}
	if err != nil {
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	return &Promotions{
		CompletedServices: profile.CompletedServices,
		Threshold:         profile.PromotionThreshold,
		Remaining:         profile.RemainingForPromotion(),
		Eligible:          profile.EligibleForPromotion(),
	}, nil
}
