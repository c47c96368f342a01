package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberrock/booking-api/internal/auth"
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

type stubProfiles map[uint]models.ClientProfile

func (s stubProfiles) GetClientProfileByUser(ctx context.Context, userID uint) (*models.ClientProfile, error) {
	p, ok := s[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func TestGetPromotions(t *testing.T) {
	uc := NewGetPromotions(stubProfiles{
		20: {UserID: 20, CompletedServices: 3, PromotionThreshold: 5},
		21: {UserID: 21, CompletedServices: 6, PromotionThreshold: 5},
	})

	tests := []struct {
		name   string
		userID uint
		want   Promotions
	}{
		{"in progress", 20, Promotions{CompletedServices: 3, Threshold: 5, Remaining: 2}},
		{"eligible", 21, Promotions{CompletedServices: 6, Threshold: 5, Remaining: 0, Eligible: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), auth.Principal{UserID: tt.userID, Role: auth.RoleClient})
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestGetPromotions_Errors(t *testing.T) {
	uc := NewGetPromotions(stubProfiles{})

	_, err := uc.Execute(context.Background(), auth.Principal{UserID: 9, Role: auth.RoleClient})
	assert.True(t, httperr.IsBusiness(err, "client_profile_not_found"))

	_, err = uc.Execute(context.Background(), auth.Principal{UserID: 9, Role: auth.RoleBarber})
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}
