package appointment

import (
	"time"

	"github.com/barberrock/booking-api/internal/models"
)

// SlotStep is the fixed stride between candidate start times. It does not
// depend on the requested duration.
const SlotStep = 30

// DefaultDurationMin applies when the request omits a duration; an explicit
// zero or negative duration is rejected.
const DefaultDurationMin = 30

type AvailabilityInput struct {
	BarberID    uint
	Date        time.Time
	DurationMin int
}

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && i.End.After(o.Start)
}

type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

func (s Slot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// GenerateSlots lists every candidate [start, start+duration) inside the
// window on day's date, stepping SlotStep minutes from the window start.
func GenerateSlots(day time.Time, window WorkingWindow, durationMin int) []Slot {
	if durationMin <= 0 {
		return nil
	}

	var slots []Slot
	for m := window.Start; m < window.End; m += SlotStep {
		end := m + ClockTime(durationMin)
		if end > window.End {
			break
		}
		slots = append(slots, Slot{
			Start: m.On(day),
			End:   end.On(day),
		})
	}
	return slots
}

// FilterAvailable keeps the candidates that overlap no occupied interval and
// flags them available. The input slice is not modified.
func FilterAvailable(candidates []Slot, occupied []Interval) []Slot {
	out := make([]Slot, 0, len(candidates))

	for _, c := range candidates {
		free := true
		for _, o := range occupied {
			if c.Interval().Overlaps(o) {
				free = false
				break
			}
		}
		if free {
			c.Available = true
			out = append(out, c)
		}
	}
	return out
}

// OccupiedIntervals derives each occupying appointment's interval from its
// own start and duration.
func OccupiedIntervals(aps []models.Appointment) []Interval {
	out := make([]Interval, 0, len(aps))
	for _, ap := range aps {
		if !Status(ap.Status).Occupies() {
			continue
		}
		out = append(out, Interval{Start: ap.StartTime, End: ap.EndTime()})
	}
	return out
}

func AvailableSlots(day time.Time, window WorkingWindow, durationMin int, occupied []Interval) []Slot {
	return FilterAvailable(GenerateSlots(day, window, durationMin), occupied)
}

// FindSlot returns the slot starting exactly at start.
func FindSlot(slots []Slot, start time.Time) (Slot, bool) {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return s, true
		}
	}
	return Slot{}, false
}

// SlotUniqueIndex backs the exact-start race at the storage layer: one
// occupying appointment per (barber, start time).
const SlotUniqueIndex = "ux_appointments_barber_start_active"
