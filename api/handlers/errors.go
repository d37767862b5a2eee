// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to {"error": ...} HTTP responses

package handlers

import (
	"errors"
	"net/http"

	"donaldking-api/api/dto/responses"
	coreerrors "donaldking-api/core/errors"
)

const (
	msgGenerationFailed = "Failed to fetch response from the generation service."
	msgGenerationEmpty  = "Empty response from the generation service."
	msgUnexpected       = "Unexpected error retrieving response."
)

// toErrorResponse converts domain errors to appropriate HTTP errors
func toErrorResponse(err error) error {
	if err == nil {
		return nil
	}

	var genErr *coreerrors.GenerationError
	switch {
	case coreerrors.IsConfiguration(err):
		return &responses.ErrorResponse{Status: http.StatusInternalServerError, Message: err.Error()}
	case coreerrors.IsMethodNotAllowed(err):
		return &responses.ErrorResponse{Status: http.StatusMethodNotAllowed, Message: err.Error()}
	case coreerrors.IsValidation(err):
		return &responses.ErrorResponse{Status: http.StatusBadRequest, Message: err.Error()}
	case errors.As(err, &genErr):
		return &responses.ErrorResponse{Status: http.StatusBadGateway, Message: msgGenerationFailed, Details: genErr.Body}
	case coreerrors.IsEmptyGeneration(err):
		return &responses.ErrorResponse{Status: http.StatusBadGateway, Message: msgGenerationEmpty}
	default:
		return &responses.ErrorResponse{Status: http.StatusInternalServerError, Message: msgUnexpected}
	}
}
