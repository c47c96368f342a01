package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/catalog"
	"github.com/barberrock/booking-api/internal/usecase/gallery"
)

// PublicHandler serves the unauthenticated website listings. Every list
// takes an optional ?query= substring filter.
type PublicHandler struct {
	catalog *catalog.Catalog
	gallery *gallery.List
	log     *zap.Logger
}

func NewPublicHandler(catalog *catalog.Catalog, gallery *gallery.List, log *zap.Logger) *PublicHandler {
	return &PublicHandler{catalog: catalog, gallery: gallery, log: log}
}

func (h *PublicHandler) Barbers(c *gin.Context) {
	items, err := h.catalog.Barbers(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Services(c *gin.Context) {
	items, err := h.catalog.Services(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Packages(c *gin.Context) {
	items, err := h.catalog.Packages(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Products(c *gin.Context) {
	items, err := h.catalog.Products(c.Request.Context(), c.Query("query"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}

func (h *PublicHandler) Gallery(c *gin.Context) {
	items, err := h.gallery.Execute(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, items)
}
