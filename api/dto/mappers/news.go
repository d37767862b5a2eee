// ABOUTME: Mappers between domain models and API DTOs
// ABOUTME: Keeps wire formatting (timestamps, enum strings) out of the core packages

package mappers

import (
	"donaldking-api/api/dto/requests"
	"donaldking-api/api/dto/responses"
	"donaldking-api/core/domain"
)

// TimestampLayout is ISO-8601 UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DiaryToResponse converts a domain diary to its API representation
func DiaryToResponse(d *domain.DiaryResponse) responses.NewsResponse {
	if d == nil {
		return responses.NewsResponse{Entries: []string{}}
	}

	entries := d.Entries
	if entries == nil {
		entries = []string{}
	}

	return responses.NewsResponse{
		Entries:   entries,
		UpdatedAt: d.UpdatedAt.UTC().Format(TimestampLayout),
		Meta: responses.NewsMeta{
			RSSURL:            d.Meta.RSSURL,
			Model:             d.Meta.Model,
			Source:            string(d.Meta.Source),
			Stage:             string(d.Meta.Stage),
			ArticleCount:      d.Meta.ArticleCount,
			Error:             d.Meta.Error,
			ErrorKind:         d.Meta.ErrorKind,
			Status:            d.Meta.Status,
			FallbackReason:    d.Meta.FallbackReason,
			RawContentPreview: d.Meta.RawContentPreview,
		},
	}
}

// ChatMessagesToDomain converts request messages to domain messages
func ChatMessagesToDomain(req *requests.ChatRequest) []domain.ChatMessage {
	if req == nil {
		return nil
	}

	messages := make([]domain.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return messages
}
