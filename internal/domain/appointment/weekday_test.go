package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberrock/booking-api/internal/httperr"
)

func TestParseWorkingDays(t *testing.T) {
	monToSat := WorkingDays{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}

	tests := []struct {
		name string
		raw  string
		want WorkingDays
	}{
		{"native list", `[1,2,3,4,5,6]`, monToSat},
		{"json encoded string", `"[1, 2, 3, 4, 5, 6]"`, monToSat},
		{"mixed types", `[1,"2",3,"4",5,"6"]`, monToSat},
		{"unordered with duplicates", `[6,5,4,3,2,1,1]`, monToSat},
		{"names", `["lunes","Martes","miércoles","jueves","viernes","sabado"]`, monToSat},
		{"english names", `["monday","sunday"]`, WorkingDays{time.Sunday, time.Monday}},
		{"seven is sunday", `[7,1]`, WorkingDays{time.Sunday, time.Monday}},
		{"zero is sunday", `[0]`, WorkingDays{time.Sunday}},
		{"bare csv", `1, 2, 3`, WorkingDays{time.Monday, time.Tuesday, time.Wednesday}},
		{"empty", ``, WorkingDays{}},
		{"null", `null`, WorkingDays{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkingDays(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWorkingDays_InvalidEntries(t *testing.T) {
	got, err := ParseWorkingDays(`[1, "funday", 9, 2.5]`)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_working_days"))
	assert.Equal(t, WorkingDays{time.Monday}, got)
}

func TestWorkingDays_EncodeRoundTrip(t *testing.T) {
	days, err := ParseWorkingDays(`"[\"6\", 1]"`)
	require.NoError(t, err)

	assert.Equal(t, "[1,6]", days.Encode())

	again, err := ParseWorkingDays(days.Encode())
	require.NoError(t, err)
	assert.Equal(t, days, again)
}

func TestSchedule_WorksOn(t *testing.T) {
	s := Schedule{Days: WorkingDays{time.Monday, time.Saturday}}

	assert.True(t, s.WorksOn(time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)))  // Monday
	assert.False(t, s.WorksOn(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))) // Sunday
	assert.True(t, s.WorksOn(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC))) // Saturday
}
