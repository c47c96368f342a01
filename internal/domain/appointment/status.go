package appointment

import (
	"strings"

	"github.com/barberrock/booking-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusRequested  Status = "requested"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

var aliases = map[string]Status{
	"agendada":    StatusRequested,
	"pendiente":   StatusRequested,
	"confirmada":  StatusConfirmed,
	"en_progreso": StatusInProgress,
	"completada":  StatusCompleted,
	"cancelada":   StatusCancelled,
	"no_show":     StatusNoShow,
	"in-progress": StatusInProgress,
	"no-show":     StatusNoShow,
}

var transitions = map[Status][]Status{
	StatusRequested:  {StatusConfirmed, StatusInProgress, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// ParseStatus accepts the canonical values and the legacy Spanish labels.
func ParseStatus(raw string) (Status, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if st := Status(s); st.Valid() {
		return st, nil
	}
	if st, ok := aliases[s]; ok {
		return st, nil
	}
	return "", httperr.InvalidInput("invalid_status", "Estado de cita inválido.")
}

func (s Status) Valid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Occupies reports whether an appointment in this status blocks its slot.
func (s Status) Occupies() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// OccupyingStatuses is the storage filter for slot conflicts.
func OccupyingStatuses() []string {
	return []string{
		string(StatusRequested),
		string(StatusConfirmed),
		string(StatusInProgress),
	}
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.InvalidInput("invalid_state", "La cita no puede cambiar a ese estado.")
}

func InitialStatus() Status {
	return StatusRequested
}
