package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
	log  *zap.Logger
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, log: log}
}

// List filters by action, entity and an inclusive from/to day range.
func (h *AuditLogsHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := auth.Authorize(p, auth.ActionViewAuditLogs); err != nil {
		httperr.Respond(c, err)
		return
	}

	f := audit.Filter{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
	}

	if f.Page, ok = intQuery(c, "page", 1); !ok {
		return
	}
	if f.Limit, ok = intQuery(c, "limit", 50); !ok {
		return
	}

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
			return
		}
		f.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
			return
		}
		f.To = &to
	}

	page, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, page)
}
