package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid identity accompanies the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when a valid identity lacks permission for the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned on login or password-change mismatch.
	// Deliberately generic: never reveals whether email or password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned on a uniqueness violation (email, sku).
	ErrConflict = errors.New("already exists")
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned on a malformed or out-of-range payload.
	ErrInvalidInput = errors.New("invalid input")
)

// Envelope is the uniform response body shared by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Msg     string      `json:"msg,omitempty"`
}

// OK wraps a successful payload.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Msg: msg}
}

// HTTPError carries a status code alongside the envelope message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The sub-causes inside
// each category are already collapsed upstream: ErrUnauthenticated covers
// missing, malformed, expired, and orphaned tokens alike, and
// ErrInvalidCredentials never says whether email or password was wrong.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized!!")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid Credentials!!")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Access Denied!!")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, "Already Exists!!")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "Not Found!!")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, "Invalid Input!!")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
