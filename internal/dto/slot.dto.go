package dto

import (
	domain "github.com/barberrock/booking-api/internal/domain/appointment"
	"github.com/barberrock/booking-api/internal/timezone"
)

type SlotDTO struct {
	Start     string `json:"hora"`
	End       string `json:"hora_fin"`
	Available bool   `json:"disponible"`
}

func Slots(slots []domain.Slot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{
			Start:     s.Start.Format(timezone.ClockLayout),
			End:       s.End.Format(timezone.ClockLayout),
			Available: s.Available,
		})
	}
	return out
}

// ConflictDetails lets the client retry against fresh availability.
type ConflictDetails struct {
	Date     string    `json:"fecha"`
	Time     string    `json:"hora"`
	BarberID uint      `json:"barbero_id"`
	Slots    []SlotDTO `json:"horarios_disponibles"`
}
