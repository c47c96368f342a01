package appointment

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/barberrock/booking-api/internal/httperr"
)

// WorkingDays is an ordered, duplicate-free set of weekdays.
// time.Weekday is the canonical encoding: Sunday=0 .. Saturday=6.
type WorkingDays []time.Weekday

var dayNames = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"miércoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWorkingDays normalizes every stored or submitted representation of a
// working-day list: a JSON list of ints, numeric strings or day names, the
// same list JSON-encoded inside a string, or a bare comma separated list.
// 7 is accepted as Sunday. Valid entries are always returned; the error
// lists the entries that could not be understood.
func ParseWorkingDays(raw string) (WorkingDays, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return WorkingDays{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return parseDayItems(splitList(raw))
	}

	switch v := decoded.(type) {
	case string:
		return ParseWorkingDays(v)
	case []any:
		return parseDayItems(v)
	case float64:
		return parseDayItems([]any{v})
	case nil:
		return WorkingDays{}, nil
	}
	return WorkingDays{}, invalidDays([]string{raw})
}

func splitList(raw string) []any {
	raw = strings.Trim(raw, "[]")
	var out []any
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDayItems(items []any) (WorkingDays, error) {
	set := make(map[time.Weekday]struct{}, len(items))
	var bad []string

	for _, item := range items {
		day, ok := parseDay(item)
		if !ok {
			bad = append(bad, fmt.Sprint(item))
			continue
		}
		set[day] = struct{}{}
	}

	days := make(WorkingDays, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	if len(bad) > 0 {
		return days, invalidDays(bad)
	}
	return days, nil
}

func parseDay(item any) (time.Weekday, bool) {
	switch v := item.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return dayFromIndex(int(v))
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if n, err := strconv.Atoi(s); err == nil {
			return dayFromIndex(n)
		}
		d, ok := dayNames[s]
		return d, ok
	}
	return 0, false
}

func dayFromIndex(n int) (time.Weekday, bool) {
	switch {
	case n == 7:
		return time.Sunday, true
	case n >= 0 && n <= 6:
		return time.Weekday(n), true
	}
	return 0, false
}

func invalidDays(bad []string) error {
	return httperr.InvalidInput(
		"invalid_working_days",
		fmt.Sprintf("Días laborales inválidos: %s.", strings.Join(bad, ", ")),
	)
}

func (d WorkingDays) Contains(day time.Weekday) bool {
	for _, w := range d {
		if w == day {
			return true
		}
	}
	return false
}

// Encode returns the canonical storage form, e.g. "[1,2,3,4,5,6]".
func (d WorkingDays) Encode() string {
	ints := make([]int, len(d))
	for i, w := range d {
		ints[i] = int(w)
	}
	b, _ := json.Marshal(ints)
	return string(b)
}

func (d WorkingDays) Ints() []int {
	ints := make([]int, len(d))
	for i, w := range d {
		ints[i] = int(w)
	}
	return ints
}
