// ABOUTME: Chat domain types shared by the persona services and the completion client
// ABOUTME: Mirrors the role/content message shape of OpenAI-compatible APIs

package domain

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRequest is a single chat-completion call.
// A zero Temperature leaves the choice to the service.
type ChatRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float32
}
