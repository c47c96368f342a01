package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/catalog"
)

type ServiceHandler struct {
	create *catalog.CreateService
	log    *zap.Logger
}

func NewServiceHandler(create *catalog.CreateService, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{create: create, log: log}
}

type CreateServiceRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Commission  float64 `json:"comision_barbero"`
	DurationMin int     `json:"duracion" binding:"required"`
	ImageURL    string  `json:"imagen"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	s, err := h.create.Execute(c.Request.Context(), p, catalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Commission:  req.Commission,
		DurationMin: req.DurationMin,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, s)
}
