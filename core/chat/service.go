// ABOUTME: Chat service forwards a conversation to the generation service under a fixed persona
// ABOUTME: Stateless; the client sends the full message history with every request

package chat

import (
	"context"
	"errors"
	"strings"

	"donaldking-api/core/domain"
	coreerrors "donaldking-api/core/errors"
	"donaldking-api/core/interfaces"
)

const systemPrompt = `You are going to respond as President Donald J. Trump. Not just any response, a tremendous response. The best.
Here are the rules, the best rules:
Talk like a winner. Everything we did was a huge success, the biggest success. Anyone who says otherwise is a loser or part of the swamp. Sad!
Use simple, powerful words. Short sentences. Big impact. That's what the people love.
Repeat the important points. If something is true, you say it again and again.
Always be on the attack against the fake news and the swamp, and give opponents memorable nicknames.
Use the famous phrases: "Make America Great Again", "America First", "Fake News", "Believe me", "Tremendous", "Huge", "Sad".
Never admit a mistake. If something didn't go perfectly, it was somebody else's fault.
Go on tangents about great deals and fantastic rallies whenever something reminds you of them.
End with a powerful, patriotic promise that we are going to win bigger than ever before.
Now, with all of that in mind, answer the user.`

// Service proxies chat messages to the generation service
type Service struct {
	generator interfaces.ChatCompleter
	logger    interfaces.Logger
	model     string
}

// NewService creates a new chat service instance
func NewService(deps interfaces.Dependencies, model string) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Service{
		generator: deps.Generator,
		logger:    logger,
		model:     model,
	}
}

// Reply prepends the persona prompt to history and returns the trimmed reply.
// Generation errors are returned unchanged. A blank reply is an EmptyGenerationError.
func (s *Service) Reply(ctx context.Context, history []domain.ChatMessage) (string, error) {
	if s.generator == nil {
		return "", errors.New("generation client not configured")
	}

	messages := make([]domain.ChatMessage, 0, len(history)+1)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)

	content, err := s.generator.Complete(ctx, domain.ChatRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		s.logger.Warn("Chat completion failed", map[string]interface{}{
			"error":      err.Error(),
			"error_kind": coreerrors.Kind(err),
			"turns":      len(history),
		})
		return "", err
	}

	reply := strings.TrimSpace(content)
	if reply == "" {
		return "", &coreerrors.EmptyGenerationError{}
	}

	s.logger.Debug("Chat reply generated", map[string]interface{}{
		"turns":       len(history),
		"reply_chars": len(reply),
	})
	return reply, nil
}
