// ABOUTME: ChatCompleter implementation for OpenAI-compatible APIs such as Fireworks
// ABOUTME: Wraps go-openai and maps its errors onto the core error taxonomy

package openai

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	coreerrors "donaldking-api/core/errors"
	"donaldking-api/core/domain"
)

// Config holds what the client needs to reach the service
type Config struct {
	// BaseURL is the API root; requests go to BaseURL + "/chat/completions"
	BaseURL string

	// APIKey is sent as a bearer token
	APIKey string

	// HTTPClient carries the timeout and transport. Nil uses a zero-value http.Client.
	HTTPClient *http.Client
}

// Client implements interfaces.ChatCompleter
type Client struct {
	client *openai.Client
}

// NewClient creates a chat-completion client
func NewClient(cfg Config) *Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		config.HTTPClient = cfg.HTTPClient
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
	}
}

// Complete sends a single chat-completion request and returns the first choice's content.
// The content is returned untrimmed; only a missing or zero-length content is an EmptyGenerationError.
func (c *Client) Complete(ctx context.Context, req domain.ChatRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &coreerrors.EmptyGenerationError{}
	}

	return resp.Choices[0].Message.Content, nil
}

// mapError turns HTTP-level failures into GenerationError and passes everything else through
func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &coreerrors.GenerationError{
			Status: apiErr.HTTPStatusCode,
			Body:   apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &coreerrors.GenerationError{
			Status: reqErr.HTTPStatusCode,
			Body:   string(reqErr.Body),
		}
	}

	return err
}
