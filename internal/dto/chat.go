package dto

// ChatMessage is one turn of the conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required,max=4000"`
}

// ChatRequest is a conversation sent to the assistant.
// IncludePayrollContext prefixes the conversation with the current company totals.
type ChatRequest struct {
	Messages              []ChatMessage `json:"messages" binding:"required,min=1,max=50,dive"`
	IncludePayrollContext bool          `json:"includePayrollContext"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}
