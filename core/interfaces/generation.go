// ABOUTME: Generation interface for OpenAI-compatible chat-completion services
// ABOUTME: Lets the news and chat services run against fakes in tests

package interfaces

import (
	"context"

	"donaldking-api/core/domain"
)

// ChatCompleter sends one chat-completion request and returns the first choice's content.
//
// Implementations return *errors.GenerationError for non-success HTTP statuses and
// *errors.EmptyGenerationError when the service answered without any content.
// Any other error (transport, decoding) is returned as-is.
type ChatCompleter interface {
	Complete(ctx context.Context, req domain.ChatRequest) (string, error)
}
