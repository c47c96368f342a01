package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/barberrock/booking-api/internal/audit"
	"github.com/barberrock/booking-api/internal/auth"
	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/media"
	"github.com/barberrock/booking-api/internal/models"
)

const objectPrefix = "galeria"

type Repository interface {
	CreateImage(ctx context.Context, img *models.GalleryImage) error
	ListActiveImages(ctx context.Context) ([]models.GalleryImage, error)
}

type ObjectStore interface {
	Put(ctx context.Context, prefix string, img *media.Image) (*media.Stored, error)
}

// ======================================================
// UPLOAD
// ======================================================

type UploadInput struct {
	Title       string
	Description string
	Order       int
	File        io.Reader
}

type Upload struct {
	repo     Repository
	store    ObjectStore
	audit    audit.Recorder
	maxWidth int
}

// NewUpload accepts a nil store when object storage is not configured.
func NewUpload(repo Repository, store ObjectStore, audit audit.Recorder, maxWidth int) *Upload {
	return &Upload{repo: repo, store: store, audit: audit, maxWidth: maxWidth}
}

func (uc *Upload) Execute(ctx context.Context, p auth.Principal, in UploadInput) (*models.GalleryImage, error) {
	if err := auth.Authorize(p, auth.ActionManageGallery); err != nil {
		return nil, err
	}
	if uc.store == nil {
		return nil, httperr.InvalidInput("media_disabled", "El almacenamiento de imágenes no está configurado.")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || in.File == nil {
		return nil, httperr.InvalidInput("missing_fields", "Título e imagen son obligatorios.")
	}

	img, err := media.Process(in.File, uc.maxWidth)
	if errors.Is(err, media.ErrUnsupportedImage) {
		return nil, httperr.InvalidInput("invalid_image", "Formato de imagen no soportado.")
	}
	if err != nil {
		return nil, err
	}

	stored, err := uc.store.Put(ctx, objectPrefix, img)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	row := &models.GalleryImage{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    stored.URL,
		ObjectKey:   stored.Key,
		Width:       img.Width,
		Height:      img.Height,
		Order:       in.Order,
		Active:      true,
	}
	if err := uc.repo.CreateImage(ctx, row); err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &p.UserID,
		Action:   audit.ActionGalleryUploaded,
		Entity:   "gallery_image",
		EntityID: &row.ID,
		Metadata: map[string]any{"key": stored.Key},
	})

	return row, nil
}

// ======================================================
// LIST
// ======================================================

type List struct {
	repo Repository
}

func NewList(repo Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := uc.repo.ListActiveImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return images, nil
}
