package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes forming the failure taxonomy of the public operations.
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeWrongPassword      = "WRONG_PASSWORD"
	CodeSamePassword       = "SAME_PASSWORD"
	CodeSlotTaken          = "SLOT_TAKEN"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeInternal           = "INTERNAL_ERROR"
)

// DomainError standardizes application errors. Message carries the localized
// user-facing text that ends up in the response envelope.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

func NewValidation(message string) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewDuplicateEmail(message string) error {
	return NewDomainError(CodeDuplicateEmail, message, http.StatusConflict)
}

func NewInvalidCredentials(message string) error {
	return NewDomainError(CodeInvalidCredentials, message, http.StatusUnauthorized)
}

func NewUnauthenticated(message string) error {
	return NewDomainError(CodeUnauthenticated, message, http.StatusUnauthorized)
}

func NewWrongPassword(message string) error {
	return NewDomainError(CodeWrongPassword, message, http.StatusBadRequest)
}

func NewSamePassword(message string) error {
	return NewDomainError(CodeSamePassword, message, http.StatusBadRequest)
}

func NewSlotTaken(message string) error {
	return NewDomainError(CodeSlotTaken, message, http.StatusConflict)
}

func NewNotFound(message string) error {
	return NewDomainError(CodeNotFound, message, http.StatusNotFound)
}

// NewStorageFailure wraps a persistence error with a localized retry message.
func NewStorageFailure(message string, err error) error {
	return &DomainError{
		Code:       CodeStorageFailure,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Si è verificato un errore. Riprova.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "Si è verificato un errore. Riprova.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// CodeOf returns the taxonomy code of an error, or empty string for nil.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	return ToDomainError(err).Code
}
