package models

import "time"

type Survey struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"cita_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating            int    `gorm:"not null" json:"calificacion"`
	CleanlinessRating int    `gorm:"not null;default:5" json:"limpieza_calificacion"`
	PunctualityRating int    `gorm:"not null;default:5" json:"puntualidad_calificacion"`
	TreatmentRating   int    `gorm:"not null;default:5" json:"trato_calificacion"`
	WouldRecommend    bool   `gorm:"default:true" json:"recomendaria"`
	Comments          string `gorm:"type:text" json:"comentarios"`

	CreatedAt time.Time `json:"fecha_creacion"`
}

type Testimonial struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ClientName      string `gorm:"size:100;not null" json:"cliente_nombre"`
	Text            string `gorm:"type:text;not null" json:"testimonio"`
	Rating          int    `gorm:"not null" json:"calificacion"`
	ServiceReceived string `gorm:"size:100" json:"servicio_recibido"`
	Order           int    `gorm:"default:0" json:"orden"`
	Active          bool   `gorm:"default:true" json:"activo"`

	AppointmentID *uint `gorm:"uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"fecha_creacion"`
}
