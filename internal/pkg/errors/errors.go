package errors

import (
	"fmt"
)

// AppError is the error type crossing usecase boundaries. The HTTP layer
// maps StatusCode to the response status; the core never sees HTTP.
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy carrying extra diagnostic fields, leaving the
// shared sentinel untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithMessage returns a copy with a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

// Is reports whether err is an AppError with the same code. Lets callers
// use errors.Is against the sentinels even after WithDetails/WithMessage.
func (e *AppError) Is(err error) bool {
	other, ok := err.(*AppError)
	return ok && other.Code == e.Code
}
