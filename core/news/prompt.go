package news

import (
	"fmt"
	"strings"

	"donaldking-api/core/domain"
)

// Temperature favours creative but bounded variation
const Temperature float32 = 0.7

const personaPrompt = `You are President Donald J. Trump keeping a royal journal for your most loyal supporters. You receive raw news headlines about yourself. For each news item:
- Write a bold, triumphant diary entry in the first person.
- Sound regal, victorious and dramatic, as if proclaiming from a golden throne.
- Mention key details from the headline, framed as proof of greatness and relentless winning.
- Add playful nicknames or jabs at opponents when it fits.
- Keep each entry to 3-4 sentences.

Return a JSON object with an 'entries' array of strings. Do not include any additional keys or narration.`

const userInstruction = "Using the following news items, craft the royal diary entries as instructed. Respond with valid JSON."

// BuildRewriteRequest builds the chat-completion request for the given articles
func BuildRewriteRequest(model string, articles []domain.Article) domain.ChatRequest {
	return domain.ChatRequest{
		Model: model,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: personaPrompt},
			{Role: domain.RoleUser, Content: userInstruction + "\n\n" + summarizeArticles(articles)},
		},
		Temperature: Temperature,
	}
}

// summarizeArticles renders "Item N / Title / Link" blocks separated by blank lines
func summarizeArticles(articles []domain.Article) string {
	blocks := make([]string, 0, len(articles))
	for i, a := range articles {
		blocks = append(blocks, fmt.Sprintf("Item %d\nTitle: %s\nLink: %s", i+1, a.Title, a.Link))
	}
	return strings.Join(blocks, "\n\n")
}
