package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is match any error carrying the same code, so wrapped
// variants compare equal to their sentinel.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

var (
	// Account errors
	ErrDuplicateEmail = &DomainError{
		Code:    "DUPLICATE_EMAIL",
		Message: "that email is already registered",
	}
	// ErrInvalidCredentials deliberately covers both unknown email and
	// wrong password so the response never reveals which accounts exist.
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email/password",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}

	// Integration errors
	ErrMissingConfiguration = &DomainError{
		Code:    "MISSING_CONFIGURATION",
		Message: "required configuration is absent",
	}
	ErrExternalService = &DomainError{
		Code:    "EXTERNAL_SERVICE_ERROR",
		Message: "external service call failed",
	}

	// Watchlist errors
	ErrWatchlistNotFound = &DomainError{
		Code:    "WATCHLIST_NOT_FOUND",
		Message: "watchlist not found",
	}
	ErrWatchlistAlreadyExists = &DomainError{
		Code:    "WATCHLIST_ALREADY_EXISTS",
		Message: "watchlist with this name already exists",
	}

	// Validation errors
	ErrValidationFailed = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
	}

	// Infrastructure errors
	ErrDatabaseOperation = &DomainError{
		Code:    "DATABASE_OPERATION_FAILED",
		Message: "database operation failed",
	}
)

// WrapValidationError wraps an error as a validation failure for a field
func WrapValidationError(field string, cause error) error {
	return &DomainError{
		Code:    ErrValidationFailed.Code,
		Message: fmt.Sprintf("validation failed: %s", field),
		Cause:   cause,
	}
}

// WrapDatabaseOperation wraps an error as a database operation failure
func WrapDatabaseOperation(operation string, cause error) error {
	return &DomainError{
		Code:    ErrDatabaseOperation.Code,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Cause:   cause,
	}
}

// WrapExternalService wraps an error as an external service failure
func WrapExternalService(service string, cause error) error {
	return &DomainError{
		Code:    ErrExternalService.Code,
		Message: fmt.Sprintf("%s request failed", service),
		Cause:   cause,
	}
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrUserNotFound.Code ||
			domainErr.Code == ErrWatchlistNotFound.Code
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrValidationFailed.Code
	}
	return false
}

// IsConflictError checks if an error is a uniqueness conflict
func IsConflictError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrDuplicateEmail.Code ||
			domainErr.Code == ErrWatchlistAlreadyExists.Code
	}
	return false
}
