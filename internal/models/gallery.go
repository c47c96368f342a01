package models

import "time"

type GalleryImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"titulo"`
	Description string `gorm:"type:text" json:"descripcion"`
	ImageURL    string `gorm:"size:500" json:"imagen"`
	ObjectKey   string `gorm:"size:255" json:"-"`
	Width       int    `json:"ancho"`
	Height      int    `json:"alto"`
	Order       int    `gorm:"default:0" json:"orden"`
	Active      bool   `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"fecha_creacion"`
}
