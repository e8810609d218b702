// Package domain defines error types for the storefront client.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the remote API answers with a status outside
// the 200-299 range. It carries the raw status so callers can react to
// specific codes without string matching.
type APIError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	return fmt.Sprintf("error %d: %s", e.StatusCode, e.Status)
}

// Is allows proper error type checking with errors.Is()
func (e *APIError) Is(target error) bool {
	_, ok := target.(*APIError)
	return ok
}

// InvalidCategoryError is returned when a category name is not one of the
// enumerated catalog sections.
type InvalidCategoryError struct {
	Value string
}

// Error implements the error interface for InvalidCategoryError
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q", e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidCategoryError) Is(target error) bool {
	_, ok := target.(*InvalidCategoryError)
	return ok
}

// Helper functions for creating errors with context

// NewAPIError creates a new APIError from a response status
func NewAPIError(statusCode int, status string) error {
	return &APIError{StatusCode: statusCode, Status: status}
}

// NewInvalidCategoryError creates a new InvalidCategoryError
func NewInvalidCategoryError(value string) error {
	return &InvalidCategoryError{Value: value}
}

// Type assertion helpers for use with errors.As()

// IsAPIError checks if an error is an APIError
func IsAPIError(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}

// IsUnauthorized checks if an error is an APIError with status 401
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusUnauthorized
}

// IsNotFound checks if an error is an APIError with status 404
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// IsInvalidCategoryError checks if an error is an InvalidCategoryError
func IsInvalidCategoryError(err error) bool {
	var ice *InvalidCategoryError
	return errors.As(err, &ice)
}
