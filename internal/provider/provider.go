package provider

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reasons reported in a Choice.
const (
	FinishStop   = "stop"
	FinishLength = "length"
	FinishError  = "error"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest mirrors the OpenAI chat completion request. The generation
// parameters are accepted for compatibility; the canned provider ignores them.
type ChatRequest struct {
	Model       string    `json:"model,omitempty"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Choice is a single completion choice.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ChatResponse is the body returned from /v1/chat/completions.
type ChatResponse struct {
	Choices []Choice `json:"choices"`
	Model   string   `json:"model"`
}

// ErrorResponse is the JSON body for any handler-level failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserQuery returns the content of the first user-role message in list
// order, or the empty string when the conversation has none.
func UserQuery(messages []Message) string {
	for _, m := range messages {
		if m.Role == RoleUser {
			return m.Content
		}
	}
	return ""
}

// Provider produces a completion for a chat request.
type Provider interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
