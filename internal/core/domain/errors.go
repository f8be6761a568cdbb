package domain

import (
	"errors"
	"net/http"
)

// ErrNotFound is what repositories return for a missing row. Services wrap it
// into an AppError with a resource specific message.
var ErrNotFound = errors.New("record not found")

// AppError carries the client facing message and HTTP status for a failure.
// Anything that is not an AppError renders as a generic 500.
type AppError struct {
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func NewError(message string, status int) *AppError {
	return &AppError{Message: message, Status: status}
}

func BadRequest(message string) *AppError {
	return NewError(message, http.StatusBadRequest)
}

func Unauthorized(message string) *AppError {
	return NewError(message, http.StatusUnauthorized)
}

func NotFound(message string) *AppError {
	return NewError(message, http.StatusNotFound)
}

func Conflict(message string) *AppError {
	return NewError(message, http.StatusConflict)
}

func UnprocessableEntity(message string) *AppError {
	return NewError(message, http.StatusUnprocessableEntity)
}

func Internal(message string) *AppError {
	return NewError(message, http.StatusInternalServerError)
}
