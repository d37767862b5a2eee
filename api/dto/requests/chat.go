// ABOUTME: Request DTOs for the chat endpoint
// ABOUTME: Unknown fields are tolerated so clients can keep their own message metadata

package requests

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	// Messages is the conversation so far, oldest first
	Messages []ChatMessage `json:"messages,omitempty" maxItems:"100" doc:"Conversation history, oldest first"`
}

// ChatMessage is one turn of the conversation
type ChatMessage struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Role    string `json:"role" doc:"Message author, usually user or assistant"`
	Content string `json:"content" doc:"Message text"`
}
