package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindInvalidInput, KindPendingSurveyBlock:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindScheduleConflict, KindDuplicateClientBooking:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error body. Non-business errors become a
// generic 500 and are expected to be logged by the caller.
func Respond(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "Error interno del servidor.")
		return
	}

	status := StatusFor(be.Kind)
	if be.Code == "barber_not_working" {
		status = http.StatusBadRequest
	}

	message := be.Message
	if message == "" {
		message = be.Code
	}

	c.JSON(status, HTTPError{
		Code:    be.Code,
		Message: message,
		Details: be.Details,
	})
}
