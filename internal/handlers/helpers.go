package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/middleware"
	"github.com/barberrock/booking-api/internal/timezone"
)

// fail writes err and logs it when it is not a business error.
func fail(c *gin.Context, log *zap.Logger, err error) {
	if _, ok := httperr.AsBusiness(err); !ok {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
	}
	httperr.Respond(c, err)
}

func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Autenticación requerida.")
	}
	return p, ok
}

// idParam parses a positive path identifier.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

// optionalUintQuery returns 0 when the parameter is absent.
func optionalUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parámetro inválido: "+name+".")
		return 0, false
	}
	return uint(v), true
}

// dateQuery parses a required YYYY-MM-DD parameter in loc.
func dateQuery(c *gin.Context, name string, loc *time.Location) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria (YYYY-MM-DD).")
		return time.Time{}, false
	}
	d, err := timezone.ParseDate(raw, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
		return time.Time{}, false
	}
	return d, true
}

func intQuery(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parámetro inválido: "+name+".")
		return 0, false
	}
	return v, true
}

func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.HTTPError{
		Code:    "invalid_request",
		Message: "Datos inválidos.",
		Details: err.Error(),
	})
}
