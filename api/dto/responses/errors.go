// ABOUTME: Error body shared by handler errors and framework-generated errors
// ABOUTME: Serializes as {"error": "...", "details": "..."} with the HTTP status kept out of the body

package responses

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse implements huma.StatusError
type ErrorResponse struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human-readable error message"`
	Details string `json:"details,omitempty" doc:"Upstream response body, when relevant"`
}

// Error implements the error interface
func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError
func (e *ErrorResponse) GetStatus() int {
	return e.Status
}

// NewError matches the signature of huma.NewError.
// Validation failures are reported as 400 with the first detail appended.
func NewError(status int, message string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	resp := &ErrorResponse{Status: status, Message: message}
	for _, err := range errs {
		if err == nil {
			continue
		}
		resp.Details = err.Error()
		break
	}
	return resp
}
