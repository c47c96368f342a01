package models

import "time"

type BarberProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialty   string `gorm:"size:100" json:"especialidad"`
	Description string `gorm:"type:text" json:"descripcion"`

	// HH:MM wall-clock bounds of the working day.
	StartTime string `gorm:"size:5;not null;default:'09:00'" json:"horario_inicio"`
	EndTime   string `gorm:"size:5;not null;default:'18:00'" json:"horario_fin"`

	// JSON list of day indices, Sunday=0. See domain/appointment.ParseWorkingDays.
	WorkingDays string `gorm:"type:text;not null;default:'[]'" json:"-"`

	Active  bool    `gorm:"default:true" json:"activo"`
	QRToken *string `gorm:"size:64;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
