// Package errors defines the application error taxonomy. User-facing
// messages are in Romanian, the site's locale; raw store errors never
// reach the client.
package errors

import (
	"net/http"

	"atelier/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Project errors
	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Proiectul nu a fost găsit.",
		"",
	)

	ErrProjectInvalid = NewBaseError(
		http.StatusBadRequest,
		"PROJECT_INVALID",
		"Completați toate câmpurile corect!",
		"",
	)

	ErrProjectNameTaken = NewBaseError(
		http.StatusConflict,
		"PROJECT_NAME_TAKEN",
		"Există deja un proiect cu acest nume.",
		"",
	)

	ErrDuplicateImage = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_IMAGE",
		"Imaginile selectate există deja.",
		"",
	)

	ErrFloorNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"FLOOR_NOT_ALLOWED",
		"Etajul nu este permis pentru această categorie.",
		"",
	)

	ErrFloorUndeletable = NewBaseError(
		http.StatusBadRequest,
		"FLOOR_UNDELETABLE",
		"Etajul nu poate fi șters.",
		"",
	)

	ErrProjectSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROJECT_SAVE_FAILED",
		"Eroare la salvarea proiectului.",
		"",
	)

	ErrProjectDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROJECT_DELETE_FAILED",
		"Eroare la ștergerea proiectului.",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email-ul sau parola incorecte.",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sesiunea a expirat. Vă rugăm să vă autentificați din nou.",
		"",
	)

	ErrNotAdmin = NewBaseError(
		http.StatusForbidden,
		"NOT_ADMIN",
		"Nu aveți permisiunea să editați proiecte.",
		"",
	)

	// Contact errors
	ErrContactIncomplete = NewBaseError(
		http.StatusBadRequest,
		"CONTACT_INCOMPLETE",
		"Vă rugăm să completați toate câmpurile.",
		"",
	)

	ErrContactSendFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTACT_SEND_FAILED",
		"Eroare la trimiterea emailului.",
		"",
	)
)
