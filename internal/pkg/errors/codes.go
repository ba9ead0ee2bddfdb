package errors

import "net/http"

var (
	ErrInvalidInput = New(
		"INVALID_INPUT",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	// ErrGeocodeFailed is a hard failure of the whole search: one
	// unresolvable postcode is not skipped or retried.
	ErrGeocodeFailed = New(
		"GEOCODE_FAILED",
		"Failed to geocode postcode",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Not allowed to perform this action",
		http.StatusForbidden,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrConflict = New(
		"CONFLICT",
		"Resource already exists",
		http.StatusConflict,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// GeocodeFailed returns ErrGeocodeFailed annotated with the postcode that
// could not be resolved.
func GeocodeFailed(postcode string) *AppError {
	return ErrGeocodeFailed.WithDetails(map[string]interface{}{
		"postcode": postcode,
	})
}
