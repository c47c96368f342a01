package models

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"nombre"`
	Description string  `gorm:"type:text" json:"descripcion"`
	Price       float64 `gorm:"not null" json:"precio"`
	Commission  float64 `gorm:"default:0" json:"comision_barbero"`
	DurationMin int     `gorm:"not null" json:"duracion"`
	Active      bool    `gorm:"default:true" json:"activo"`
	ImageURL    string  `gorm:"size:255" json:"imagen"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"nombre"`
	Description string  `gorm:"type:text" json:"descripcion"`
	Price       float64 `gorm:"not null" json:"precio"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Active      bool    `gorm:"default:true" json:"activo"`
	ImageURL    string  `gorm:"size:255" json:"imagen"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

type Package struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"nombre"`
	Description string    `gorm:"type:text" json:"descripcion"`
	Price       float64   `gorm:"not null" json:"precio"`
	Services    []Service `gorm:"many2many:package_services;" json:"servicios"`
	Products    []Product `gorm:"many2many:package_products;" json:"productos"`
	Active      bool      `gorm:"default:true" json:"activo"`
	ImageURL    string    `gorm:"size:255" json:"imagen"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
