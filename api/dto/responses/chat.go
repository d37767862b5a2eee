// ABOUTME: Response DTO for the chat endpoint
// ABOUTME: Carries the persona reply text

package responses

// ChatResponse is the body of POST /api/chat
type ChatResponse struct {
	Reply string `json:"reply" doc:"Persona reply, trimmed"`
}
