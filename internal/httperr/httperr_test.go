package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond_MapsKindsToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"invalid input", InvalidInput("invalid_date", "bad"), http.StatusBadRequest, "invalid_date"},
		{"not found", NotFoundErr("barber_not_found", "x"), http.StatusNotFound, "barber_not_found"},
		{"forbidden", Forbidden("client_only", "x"), http.StatusForbidden, "client_only"},
		{"conflict", ScheduleConflict("slot_unavailable", "x"), http.StatusConflict, "slot_unavailable"},
		{"barber off", ScheduleConflict("barber_not_working", "x"), http.StatusBadRequest, "barber_not_working"},
		{"pending survey", PendingSurvey("pending_survey", "x"), http.StatusBadRequest, "pending_survey"},
		{"duplicate", DuplicateClientBooking("duplicate_booking", "x"), http.StatusConflict, "duplicate_booking"},
		{"wrapped", fmt.Errorf("outer: %w", NotFoundErr("service_not_found", "x")), http.StatusNotFound, "service_not_found"},
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.err)

			assert.Equal(t, tt.want, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespond_IncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, PendingSurvey("pending_survey", "x").WithDetails(map[string]any{"id": 7}))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"id": float64(7)}, body["details"])
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "ux_a"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "ux_a"))
	assert.False(t, IsUniqueViolation(err, "ux_b"))
	assert.False(t, IsUniqueViolation(errors.New("x"), ""))
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrap: %w", ErrBusiness("too_soon"))
	assert.True(t, IsBusiness(err, "too_soon"))
	assert.True(t, IsKind(err, KindInvalidInput))
	assert.False(t, IsBusiness(err, "other"))
}
