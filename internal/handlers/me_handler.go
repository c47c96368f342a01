package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/account"
	"github.com/barberrock/booking-api/internal/usecase/loyalty"
)

type MeHandler struct {
	me         *account.Me
	promotions *loyalty.GetPromotions
	log        *zap.Logger
}

func NewMeHandler(me *account.Me, promotions *loyalty.GetPromotions, log *zap.Logger) *MeHandler {
	return &MeHandler{me: me, promotions: promotions, log: log}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	acc, err := h.me.Execute(c.Request.Context(), p)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, acc)
}

func (h *MeHandler) Promotions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	promo, err := h.promotions.Execute(c.Request.Context(), p)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, promo)
}
