package contract

import "fmt"

type ErrorCode string

const (
	ErrInvalidTemperature ErrorCode = "INVALID_TEMPERATURE"
	ErrInvalidDosage      ErrorCode = "INVALID_DOSAGE"
	ErrInvalidAge         ErrorCode = "INVALID_AGE"
	ErrInvalidDuration    ErrorCode = "INVALID_DURATION"
	ErrInvalidDiagnosis   ErrorCode = "INVALID_DIAGNOSIS"
)

// Error is a validation failure at the service boundary.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
