package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/dto"
	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/survey"
)

type SurveyHandler struct {
	info     *survey.GetInfo
	submit   *survey.Submit
	scanQR   *survey.ScanQR
	pending  *survey.PendingByQR
	barberQR *survey.GetBarberQR
	log      *zap.Logger
}

func NewSurveyHandler(
	info *survey.GetInfo,
	submit *survey.Submit,
	scanQR *survey.ScanQR,
	pending *survey.PendingByQR,
	barberQR *survey.GetBarberQR,
	log *zap.Logger,
) *SurveyHandler {
	return &SurveyHandler{
		info:     info,
		submit:   submit,
		scanQR:   scanQR,
		pending:  pending,
		barberQR: barberQR,
		log:      log,
	}
}

// SubmitSurveyRequest takes numbers or numeric strings, as sent by plain
// HTML forms.
type SubmitSurveyRequest struct {
	Token          string       `json:"token"`
	Rating         dto.FlexInt  `json:"calificacion"`
	Cleanliness    dto.FlexInt  `json:"limpieza_calificacion"`
	Punctuality    dto.FlexInt  `json:"puntualidad_calificacion"`
	Treatment      dto.FlexInt  `json:"trato_calificacion"`
	WouldRecommend dto.FlexBool `json:"recomendaria"`
	Comments       string       `json:"comentarios"`
}

// ======================================================
// PUBLIC SURVEY
// ======================================================

func (h *SurveyHandler) Info(c *gin.Context) {
	info, err := h.info.Execute(c.Request.Context(), strings.TrimSpace(c.Query("token")))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, info)
}

func (h *SurveyHandler) Submit(c *gin.Context) {
	var req SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	s, err := h.submit.Execute(c.Request.Context(), survey.SubmitInput{
		Token:          strings.TrimSpace(req.Token),
		Rating:         req.Rating.Ptr(),
		Cleanliness:    req.Cleanliness.Ptr(),
		Punctuality:    req.Punctuality.Ptr(),
		Treatment:      req.Treatment.Ptr(),
		WouldRecommend: req.WouldRecommend.Ptr(),
		Comments:       req.Comments,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}

	httpresp.Created(c, gin.H{
		"mensaje":  "¡Gracias por tu opinión!",
		"encuesta": s,
	})
}

// ======================================================
// QR
// ======================================================

func (h *SurveyHandler) ScanQR(c *gin.Context) {
	barber, err := h.scanQR.Execute(c.Request.Context(), c.Param("token"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"barbero": barber})
}

func (h *SurveyHandler) PendingByQR(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	pending, err := h.pending.Execute(c.Request.Context(), p, c.Param("token"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, pending)
}

func (h *SurveyHandler) BarberQR(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	qr, err := h.barberQR.Execute(c.Request.Context(), p, id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, qr)
}
