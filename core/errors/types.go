// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents missing or invalid server configuration
type ConfigurationError struct {
	Key     string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s environment variable is not set.", e.Key)
}

// MethodNotAllowedError represents a request with an unsupported HTTP method
type MethodNotAllowedError struct {
	Method string
}

// Error implements the error interface
func (e *MethodNotAllowedError) Error() string {
	return "Method Not Allowed"
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

// FeedFetchError represents a non-success response from the news feed
type FeedFetchError struct {
	Status int
	Body   string
}

// Error implements the error interface
func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("RSS fetch failed: %d %s", e.Status, e.Body)
}

// GenerationError represents a non-success response from the text-generation service
type GenerationError struct {
	Status int
	Body   string
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation request failed: %d %s", e.Status, e.Body)
}

// EmptyGenerationError represents a successful generation call that carried no content
type EmptyGenerationError struct{}

// Error implements the error interface
func (e *EmptyGenerationError) Error() string {
	return "empty response from generation service"
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsMethodNotAllowed checks if an error is a MethodNotAllowedError
func IsMethodNotAllowed(err error) bool {
	var methodErr *MethodNotAllowedError
	return errors.As(err, &methodErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFeedFetch checks if an error is a FeedFetchError
func IsFeedFetch(err error) bool {
	var feedErr *FeedFetchError
	return errors.As(err, &feedErr)
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsEmptyGeneration checks if an error is an EmptyGenerationError
func IsEmptyGeneration(err error) bool {
	var emptyErr *EmptyGenerationError
	return errors.As(err, &emptyErr)
}

// Kind returns the type name used to label an error in response metadata
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsFeedFetch(err):
		return "FeedFetchError"
	case IsGeneration(err):
		return "GenerationError"
	case IsEmptyGeneration(err):
		return "EmptyGenerationError"
	case IsConfiguration(err):
		return "ConfigurationError"
	case IsValidation(err):
		return "ValidationError"
	default:
		return "error"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
