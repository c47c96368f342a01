package appointment

import (
	"fmt"
	"time"

	"github.com/barberrock/booking-api/internal/httperr"
	"github.com/barberrock/booking-api/internal/models"
)

// ClockTime is a wall-clock time of day in minutes since midnight.
type ClockTime int

func ParseClock(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, httperr.InvalidInput("invalid_time", fmt.Sprintf("Hora inválida: %q.", s))
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On places c on day's calendar date in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, int(c), 0, 0, day.Location())
}

// WorkingWindow is the barber's daily [Start, End) window.
type WorkingWindow struct {
	Start ClockTime
	End   ClockTime
}

func NewWorkingWindow(start, end string) (WorkingWindow, error) {
	s, err := ParseClock(start)
	if err != nil {
		return WorkingWindow{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return WorkingWindow{}, err
	}
	if s >= e {
		return WorkingWindow{}, httperr.InvalidInput(
			"invalid_working_window",
			"La hora de inicio debe ser anterior a la hora de fin.",
		)
	}
	return WorkingWindow{Start: s, End: e}, nil
}

// Schedule is the normalized scheduling view of a barber profile.
type Schedule struct {
	BarberID uint
	Window   WorkingWindow
	Days     WorkingDays
	Active   bool
}

// ScheduleOf normalizes a stored barber profile. Unknown stored day entries
// are skipped; they are only rejected when written.
func ScheduleOf(b *models.BarberProfile) (Schedule, error) {
	window, err := NewWorkingWindow(b.StartTime, b.EndTime)
	if err != nil {
		return Schedule{}, err
	}

	days, _ := ParseWorkingDays(b.WorkingDays)

	return Schedule{
		BarberID: b.ID,
		Window:   window,
		Days:     days,
		Active:   b.Active,
	}, nil
}

func (s Schedule) WorksOn(day time.Time) bool {
	return s.Days.Contains(day.Weekday())
}
