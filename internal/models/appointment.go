package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint          `gorm:"index" json:"cliente_id"`
	Client   *ClientProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BarberID uint          `gorm:"not null;index" json:"barbero_id"`
	Barber   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID *uint    `json:"servicio_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PackageID *uint    `json:"paquete_id"`
	Package   *Package `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartTime   time.Time `gorm:"not null;index" json:"fecha_hora"`
	DurationMin int       `gorm:"not null" json:"duracion"`

	Status string `gorm:"size:20;not null;default:'requested'" json:"estado"`
	Notes  string `gorm:"type:text" json:"notas"`

	ContactName      string  `gorm:"size:150" json:"nombre_cliente"`
	ContactPhone     string  `gorm:"size:30" json:"telefono_cliente"`
	ContactEmail     *string `gorm:"size:254" json:"email_cliente"`
	RegisteredClient bool    `gorm:"default:true" json:"es_cliente_registrado"`

	SurveyToken     string `gorm:"size:64;index:ux_appointments_survey_token,unique,where:survey_token <> ''" json:"-"`
	SurveyCompleted bool   `gorm:"default:false" json:"encuesta_completada"`
	LoyaltyRedeemed bool   `gorm:"default:false" json:"promocion_aplicada"`

	Products []Product `gorm:"many2many:appointment_products;" json:"productos"`

	CancelledAt *time.Time `json:"-"`
	CompletedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

func (a Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMin) * time.Minute)
}

// ServiceName is the catalog name shown in agendas and alerts.
func (a Appointment) ServiceName() string {
	switch {
	case a.Service != nil:
		return a.Service.Name
	case a.Package != nil:
		return a.Package.Name
	}
	return "N/A"
}
