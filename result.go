package genq

import "github.com/google/uuid"

// Result represents a complete response from a generation provider.
type Result struct {
	Content      string `json:"content,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// RequestID creates a unique identifier for correlating log entries
// belonging to one generation request.
func RequestID() string {
	return "req-" + uuid.New().String()
}
