// ABOUTME: Chat handler for the Huma API
// ABOUTME: Serves POST /api/chat, relaying the conversation through the persona service

package handlers

import (
	"context"
	"net/http"

	"donaldking-api/api/dto/mappers"
	"donaldking-api/api/dto/requests"
	"donaldking-api/api/dto/responses"
	"donaldking-api/core/domain"
	coreerrors "donaldking-api/core/errors"
	"donaldking-api/pkg/config"

	"github.com/danielgtaylor/huma/v2"
)

// ChatService interface defines the methods needed from the chat service
type ChatService interface {
	Reply(ctx context.Context, history []domain.ChatMessage) (string, error)
}

// ChatHandler handles chat requests
type ChatHandler struct {
	chatService ChatService
	hasAPIKey   bool
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService ChatService, hasAPIKey bool) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		hasAPIKey:   hasAPIKey,
	}
}

// RegisterRoutes registers the chat routes
func (h *ChatHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "chat",
		Method:      http.MethodPost,
		Path:        "/api/chat",
		Summary:     "Chat with the persona",
		Description: "Prepends the persona prompt to the conversation and returns the model's reply",
		Tags:        []string{"Chat"},
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway},
	}, h.Chat)
}

// ChatInput defines the input for the Chat operation
type ChatInput struct {
	Body *requests.ChatRequest `required:"false"`
}

// ChatOutput defines the output for the Chat operation
type ChatOutput struct {
	Body responses.ChatResponse
}

// Chat handles the POST /api/chat endpoint
func (h *ChatHandler) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	if !h.hasAPIKey {
		return nil, toErrorResponse(&coreerrors.ConfigurationError{Key: config.APIKeyEnv})
	}

	reply, err := h.chatService.Reply(ctx, mappers.ChatMessagesToDomain(input.Body))
	if err != nil {
		return nil, toErrorResponse(err)
	}

	return &ChatOutput{
		Body: responses.ChatResponse{Reply: reply},
	}, nil
}
