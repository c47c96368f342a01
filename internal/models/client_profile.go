package models

import "time"

type ClientProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	CompletedServices  int        `gorm:"not null;default:0" json:"cortes_realizados"`
	PromotionThreshold int        `gorm:"not null;default:5" json:"cortes_para_promocion"`
	LastServiceAt      *time.Time `json:"fecha_ultimo_corte"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p ClientProfile) RemainingForPromotion() int {
	if r := p.PromotionThreshold - p.CompletedServices; r > 0 {
		return r
	}
	return 0
}

func (p ClientProfile) EligibleForPromotion() bool {
	return p.CompletedServices >= p.PromotionThreshold
}
