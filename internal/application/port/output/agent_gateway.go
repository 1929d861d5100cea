package output

import (
	"context"
	"time"
)

// AgentGateway is the interface for text generation by a language model.
// This abstraction allows different AI backends (Gemini, Claude, mock)
type AgentGateway interface {
	// Execute sends one prompt and returns the generated text
	Execute(ctx context.Context, req AgentRequest) (*AgentResponse, error)

	// HealthCheck verifies if the backend is reachable
	HealthCheck(ctx context.Context) error

	// Name returns the agent type identifier
	Name() string
}

// AgentRequest represents a request to a language model
type AgentRequest struct {
	Prompt string // The prompt to send
}

// AgentResponse represents the response from a language model
type AgentResponse struct {
	Output     string            // Generated text
	Duration   time.Duration     // Round-trip duration
	TokensUsed int               // Number of tokens used (if reported)
	AgentType  string            // Type of agent that answered
	Metadata   map[string]string // Additional metadata
}
