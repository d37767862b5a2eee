package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"donaldking-api/api/dto/responses"
	coreerrors "donaldking-api/core/errors"
)

func TestToErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "configuration error",
			input:          &coreerrors.ConfigurationError{Key: "FIREWORKS_API_KEY"},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "FIREWORKS_API_KEY environment variable is not set.",
		},
		{
			name:           "method not allowed",
			input:          &coreerrors.MethodNotAllowedError{Method: http.MethodPut},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedMsg:    "Method Not Allowed",
		},
		{
			name:           "validation error",
			input:          &coreerrors.ValidationError{Field: "messages", Message: "must be an array"},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "validation error on field 'messages': must be an array",
		},
		{
			name:           "wrapped generation error",
			input:          coreerrors.WrapError(&coreerrors.GenerationError{Status: 500, Body: "boom"}, "chat"),
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Failed to fetch response from the generation service.",
		},
		{
			name:           "empty generation",
			input:          &coreerrors.EmptyGenerationError{},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Empty response from the generation service.",
		},
		{
			name:           "generic error",
			input:          errors.New("socket closed"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Unexpected error retrieving response.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toErrorResponse(tt.input)

			statusErr, ok := result.(huma.StatusError)
			if !ok {
				t.Fatalf("expected huma.StatusError, got %T", result)
			}
			if statusErr.GetStatus() != tt.expectedStatus {
				t.Errorf("status = %d, want %d", statusErr.GetStatus(), tt.expectedStatus)
			}
			if statusErr.Error() != tt.expectedMsg {
				t.Errorf("message = %q, want %q", statusErr.Error(), tt.expectedMsg)
			}
		})
	}
}

func TestToErrorResponse_GenerationDetails(t *testing.T) {
	result := toErrorResponse(&coreerrors.GenerationError{Status: 401, Body: "invalid api key"})

	resp, ok := result.(*responses.ErrorResponse)
	if !ok {
		t.Fatalf("expected *responses.ErrorResponse, got %T", result)
	}
	if resp.Details != "invalid api key" {
		t.Errorf("details = %q, want upstream body", resp.Details)
	}
}

func TestToErrorResponse_Nil(t *testing.T) {
	if toErrorResponse(nil) != nil {
		t.Error("toErrorResponse(nil) should return nil")
	}
}
