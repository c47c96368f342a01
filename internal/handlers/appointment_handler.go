package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/timezone"
	"github.com/barberrock/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *appointment.GetAvailability
	schedule     *appointment.ScheduleAppointment
	changeStatus *appointment.ChangeAppointmentStatus
	listByDate   *appointment.ListAppointmentsByDate
	listByMonth  *appointment.ListAppointmentsByMonth
	loc          *time.Location
	log          *zap.Logger
}

func NewAppointmentHandler(
	availability *appointment.GetAvailability,
	schedule *appointment.ScheduleAppointment,
	changeStatus *appointment.ChangeAppointmentStatus,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
	loc *time.Location,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		schedule:     schedule,
		changeStatus: changeStatus,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		loc:          loc,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ContactRequest struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
	Email string `json:"email"`
}

// ScheduleRequest accepts both the *_id keys and the bare entity keys.
// estado and cliente_id are ignored: new appointments always start
// requested and belong to the caller.
type ScheduleRequest struct {
	ServiceID  dto.FlexInt    `json:"servicio_id"`
	Service    dto.FlexInt    `json:"servicio"`
	PackageID  dto.FlexInt    `json:"paquete_id"`
	Package    dto.FlexInt    `json:"paquete"`
	BarberID   dto.FlexInt    `json:"barbero_id"`
	Barber     dto.FlexInt    `json:"barbero"`
	Date       string         `json:"fecha"`
	Time       string         `json:"hora"`
	Duration   dto.FlexInt    `json:"duracion"`
	Notes      string         `json:"notas"`
	Contact    ContactRequest `json:"contacto"`
	ProductIDs dto.FlexIDs    `json:"productos"`
}

func firstID(ids ...dto.FlexInt) *uint {
	for _, id := range ids {
		if v := id.ID(); v != nil {
			return v
		}
	}
	return nil
}

type ChangeStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date, ok := dateQuery(c, "fecha", h.loc)
	if !ok {
		return
	}

	barberID, ok := optionalUintQuery(c, "barbero_id")
	if !ok {
		return
	}
	if barberID == 0 {
		httperr.BadRequest(c, "missing_barber", "El barbero es obligatorio.")
		return
	}

	duration, ok := intQuery(c, "duracion", domain.DefaultDurationMin)
	if !ok {
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:    barberID,
		Date:        date,
		DurationMin: duration,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	body := gin.H{
		"fecha": res.Date.Format(timezone.DateLayout),
		"barbero": dto.BarberRef{
			ID:   res.Barber.ID,
			Name: res.Barber.User.DisplayName(),
		},
		"horarios_disponibles": dto.Slots(res.Slots),
	}
	if res.Message != "" {
		body["mensaje"] = res.Message
	}
	httpresp.OK(c, body)
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *AppointmentHandler) Schedule(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	var barberID uint
	if id := firstID(req.BarberID, req.Barber); id != nil {
		barberID = *id
	}

	ap, err := h.schedule.Execute(c.Request.Context(), appointment.ScheduleAppointmentInput{
		Principal:   p,
		BarberID:    barberID,
		ServiceID:   firstID(req.ServiceID, req.Service),
		PackageID:   firstID(req.PackageID, req.Package),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		DurationMin: req.Duration.Ptr(),
		Notes:       req.Notes,
		Contact: appointment.ContactOverride{
			Name:  req.Contact.Name,
			Phone: req.Contact.Phone,
			Email: req.Contact.Email,
		},
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"mensaje": "Cita agendada exitosamente.",
		"cita":    dto.Booking(ap),
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), appointment.ChangeStatusInput{
		Principal:     p,
		AppointmentID: id,
		Status:        req.Status,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":                  ap.ID,
		"estado":              ap.Status,
		"encuesta_completada": ap.SurveyCompleted,
	})
}

// ======================================================
// AGENDA
// ======================================================

// ListByDate serves both /barberos/:id/agenda/ and /mi-agenda/ (no :id).
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	barberID, ok := agendaID(c)
	if !ok {
		return
	}
	date, ok := dateQuery(c, "fecha", h.loc)
	if !ok {
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), p, barberID, date)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	barberID, ok := agendaID(c)
	if !ok {
		return
	}

	now := timezone.NowIn(h.loc)
	year, ok := intQuery(c, "anio", now.Year())
	if !ok {
		return
	}
	month, ok := intQuery(c, "mes", int(now.Month()))
	if !ok {
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), p, barberID, year, month)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func agendaID(c *gin.Context) (uint, bool) {
	if c.Param("id") == "" {
		return 0, true
	}
	return idParam(c, "id")
}
