package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/alert"
)

type AlertHandler struct {
	list     *alert.ListPending
	markSent *alert.MarkSent
	log      *zap.Logger
}

func NewAlertHandler(list *alert.ListPending, markSent *alert.MarkSent, log *zap.Logger) *AlertHandler {
	return &AlertHandler{list: list, markSent: markSent, log: log}
}

func (h *AlertHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	alerts, err := h.list.Execute(c.Request.Context(), p)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, alerts)
}

func (h *AlertHandler) MarkSent(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	a, err := h.markSent.Execute(c.Request.Context(), p, id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, a)
}
