package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/barberrock/booking-api/internal/models"
	"github.com/barberrock/booking-api/internal/usecase/gallery"
)

type GalleryGormRepository struct {
	db *gorm.DB
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{db: db}
}

func (r *GalleryGormRepository) CreateImage(ctx context.Context, img *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *GalleryGormRepository) ListActiveImages(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order(`"order" ASC, created_at DESC`).
		Find(&images).Error
	return images, err
}

var _ gallery.Repository = (*GalleryGormRepository)(nil)
