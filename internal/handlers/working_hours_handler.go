package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/catalog"
)

type WorkingHoursHandler struct {
	get    *catalog.GetSchedule
	update *catalog.UpdateSchedule
	log    *zap.Logger
}

func NewWorkingHoursHandler(get *catalog.GetSchedule, update *catalog.UpdateSchedule, log *zap.Logger) *WorkingHoursHandler {
	return &WorkingHoursHandler{get: get, update: update, log: log}
}

// WorkingHoursUpdateRequest keeps dias_laborales raw: it may arrive as a
// list of numbers, of strings, of day names, or as a JSON-encoded string.
type WorkingHoursUpdateRequest struct {
	StartTime   string          `json:"horario_inicio"`
	EndTime     string          `json:"horario_fin"`
	WorkingDays json.RawMessage `json:"dias_laborales"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), p, id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	days := strings.TrimSpace(string(req.WorkingDays))
	if days == "null" {
		days = ""
	}

	view, err := h.update.Execute(c.Request.Context(), catalog.UpdateScheduleInput{
		Principal:   p,
		BarberID:    id,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		WorkingDays: days,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, view)
}
