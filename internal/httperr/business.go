package httperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindScheduleConflict
	KindPendingSurveyBlock
	KindDuplicateClientBooking
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	case KindScheduleConflict:
		return "schedule_conflict"
	case KindPendingSurveyBlock:
		return "pending_survey"
	case KindDuplicateClientBooking:
		return "duplicate_client_booking"
	}
	return "unknown"
}

// BusinessError is a user-visible failure detected before any write.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details any
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy carrying a client-visible payload.
func (e BusinessError) WithDetails(details any) BusinessError {
	e.Details = details
	return e
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code}
}

func InvalidInput(code, message string) BusinessError {
	return BusinessError{Kind: KindInvalidInput, Code: code, Message: message}
}

func NotFoundErr(code, message string) BusinessError {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func Forbidden(code, message string) BusinessError {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func UnauthorizedErr(code, message string) BusinessError {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

func ScheduleConflict(code, message string) BusinessError {
	return BusinessError{Kind: KindScheduleConflict, Code: code, Message: message}
}

func PendingSurvey(code, message string) BusinessError {
	return BusinessError{Kind: KindPendingSurveyBlock, Code: code, Message: message}
}

func DuplicateClientBooking(code, message string) BusinessError {
	return BusinessError{Kind: KindDuplicateClientBooking, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	if be, ok := AsBusiness(err); ok {
		return be.Kind == kind
	}
	return false
}
