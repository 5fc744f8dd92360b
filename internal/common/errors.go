package common

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = errors.New("requested resource not found")
	ErrBadRequest    = errors.New("bad request")
	ErrConflict      = errors.New("resource conflict") // e.g., answer already submitted
	ErrValidation    = errors.New("validation failed")
	ErrAlreadyMember = errors.New("already a member")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) || errors.Is(err, ErrAlreadyMember) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
