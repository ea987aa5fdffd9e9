// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// FetchError is a failed initial or incremental page load.
// It is surfaced to the caller, who decides when to retry.
type FetchError struct {
	Page    int
	Initial bool
	Cause   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	kind := "next"
	if e.Initial {
		kind = "initial"
	}
	return fmt.Sprintf("failed to load %s page %d: %v", kind, e.Page, e.Cause)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// MutationError is a failed like or follow call. It is recovered locally by rollback.
type MutationError struct {
	Action string
	Key    string
	Cause  error
}

// Error implements the error interface
func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Action, e.Key, e.Cause)
}

// Unwrap returns the underlying cause
func (e *MutationError) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsMutation checks if an error is a MutationError
func IsMutation(err error) bool {
	var mutationErr *MutationError
	return errors.As(err, &mutationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
