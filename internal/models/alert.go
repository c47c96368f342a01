package models

import "time"

type AppointmentAlert struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Sent   bool       `gorm:"default:false" json:"mensaje_enviado"`
	SentAt *time.Time `json:"fecha_envio"`

	CreatedAt time.Time `json:"fecha_creacion"`
}
