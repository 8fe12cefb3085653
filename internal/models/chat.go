package models

// Role identifies who authored a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the roles the completion API accepts.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message represents a single turn in a conversation. Order is chronological.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse is the reply from the model.
type ChatResponse struct {
	Response string `json:"response"`
}

// MessageResponse carries every rejection and failure body. The HTTP status stays 200.
type MessageResponse struct {
	Message string `json:"message"`
}
