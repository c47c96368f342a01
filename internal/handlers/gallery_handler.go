package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/gallery"
)

// maxUploadBytes bounds the multipart body of a gallery upload.
const maxUploadBytes = 10 << 20

type GalleryHandler struct {
	upload *gallery.Upload
	log    *zap.Logger
}

func NewGalleryHandler(upload *gallery.Upload, log *zap.Logger) *GalleryHandler {
	return &GalleryHandler{upload: upload, log: log}
}

// Upload expects multipart fields titulo, descripcion, orden and the file
// under imagen.
func (h *GalleryHandler) Upload(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("imagen")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "La imagen es obligatoria.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	defer f.Close()

	order, _ := strconv.Atoi(c.PostForm("orden"))

	img, err := h.upload.Execute(c.Request.Context(), p, gallery.UploadInput{
		Title:       c.PostForm("titulo"),
		Description: c.PostForm("descripcion"),
		Order:       order,
		File:        f,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, img)
}
