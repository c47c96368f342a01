package dto

import (
	"time"

	"github.com/barberrock/booking-api/internal/models"
)

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	StartTime       time.Time `json:"fecha_hora"`
	EndTime         time.Time `json:"fecha_hora_fin"`
	DurationMin     int       `json:"duracion"`
	Status          string    `json:"estado"`
	ClientName      string    `json:"cliente_nombre"`
	ClientPhone     string    `json:"cliente_telefono"`
	ServiceName     string    `json:"servicio"`
	Products        []string  `json:"productos"`
	Notes           string    `json:"notas"`
	SurveyCompleted bool      `json:"encuesta_completada"`
}

func AppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		products := make([]string, 0, len(ap.Products))
		for _, p := range ap.Products {
			products = append(products, p.Name)
		}

		out = append(out, AppointmentListDTO{
			ID:              ap.ID,
			StartTime:       ap.StartTime,
			EndTime:         ap.EndTime(),
			DurationMin:     ap.DurationMin,
			Status:          ap.Status,
			ClientName:      ContactName(ap),
			ClientPhone:     ap.ContactPhone,
			ServiceName:     ap.ServiceName(),
			Products:        products,
			Notes:           ap.Notes,
			SurveyCompleted: ap.SurveyCompleted,
		})
	}
	return out
}

// ContactName prefers the registered client's name over the booking contact.
func ContactName(ap models.Appointment) string {
	if ap.Client != nil && ap.Client.User.ID != 0 {
		return ap.Client.User.DisplayName()
	}
	if ap.ContactName != "" {
		return ap.ContactName
	}
	return "Cliente"
}

// ======================================================
// Booking
// ======================================================

type BarberRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type ServiceRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"nombre"`
	DurationMin int    `json:"duracion"`
}

type PackageRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type ProductRef struct {
	ID    uint    `json:"id"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

type ContactDTO struct {
	Name  string  `json:"nombre"`
	Phone string  `json:"telefono"`
	Email *string `json:"email"`
}

type BookingDTO struct {
	ID               uint         `json:"id"`
	StartTime        time.Time    `json:"fecha_hora"`
	DurationMin      int          `json:"duracion"`
	Status           string       `json:"estado"`
	Barber           BarberRef    `json:"barbero"`
	Service          *ServiceRef  `json:"servicio"`
	Package          *PackageRef  `json:"paquete"`
	Products         []ProductRef `json:"productos"`
	Contact          ContactDTO   `json:"contacto"`
	RegisteredClient bool         `json:"es_cliente_registrado"`
	LoyaltyRedeemed  bool         `json:"promocion_aplicada"`
}

func Booking(ap *models.Appointment) BookingDTO {
	out := BookingDTO{
		ID:          ap.ID,
		StartTime:   ap.StartTime,
		DurationMin: ap.DurationMin,
		Status:      ap.Status,
		Barber: BarberRef{
			ID:   ap.Barber.ID,
			Name: ap.Barber.User.DisplayName(),
		},
		Products: make([]ProductRef, 0, len(ap.Products)),
		Contact: ContactDTO{
			Name:  ap.ContactName,
			Phone: ap.ContactPhone,
			Email: ap.ContactEmail,
		},
		RegisteredClient: ap.RegisteredClient,
		LoyaltyRedeemed:  ap.LoyaltyRedeemed,
	}

	if ap.Service != nil {
		out.Service = &ServiceRef{ID: ap.Service.ID, Name: ap.Service.Name, DurationMin: ap.Service.DurationMin}
	}
	if ap.Package != nil {
		out.Package = &PackageRef{ID: ap.Package.ID, Name: ap.Package.Name}
	}
	for _, p := range ap.Products {
		out.Products = append(out.Products, ProductRef{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return out
}

// PendingSurveyDTO identifies the appointment blocking a new booking.
type PendingSurveyDTO struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"fecha_hora"`
	Barber    string    `json:"barbero"`
	Service   string    `json:"servicio"`
	QRToken   *string   `json:"qr_token"`
}

func PendingSurvey(ap *models.Appointment) PendingSurveyDTO {
	return PendingSurveyDTO{
		ID:        ap.ID,
		StartTime: ap.StartTime,
		Barber:    ap.Barber.User.DisplayName(),
		Service:   ap.ServiceName(),
		QRToken:   ap.Barber.QRToken,
	}
}
