package domain

import "fmt"

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeRemoteUnavailable = "REMOTE_UNAVAILABLE"
	ErrCodeImportMalformed   = "IMPORT_MALFORMED"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewRemoteUnavailableError creates an error for a failed call to the
// authoritative lead store. The working set falls back to its last
// snapshot when it sees this code.
func NewRemoteUnavailableError(err error) error {
	return &DomainError{
		Code:    ErrCodeRemoteUnavailable,
		Message: "Lead store is unavailable",
		Err:     err,
	}
}

// NewImportMalformedError creates an error for a bulk file that cannot be
// parsed at all. The whole import aborts and the working set is untouched.
func NewImportMalformedError(err error) error {
	return &DomainError{
		Code:    ErrCodeImportMalformed,
		Message: "Import file could not be parsed",
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeNotFound
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeValidation
	}
	return false
}

// IsRemoteUnavailable checks if the error is a remote store failure
func IsRemoteUnavailable(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeRemoteUnavailable
	}
	return false
}

// IsImportMalformed checks if the error is an unparseable import file
func IsImportMalformed(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeImportMalformed
	}
	return false
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	if de, ok := err.(*DomainError); ok {
		return de.Code == ErrCodeBadRequest
	}
	return false
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrCodeInternal
}
