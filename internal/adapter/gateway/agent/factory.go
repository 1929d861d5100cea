package agent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

// ErrMissingAPIKey is returned when a remote gateway is built without credentials
var ErrMissingAPIKey = errors.New("api key is required")

var (
	_ output.AgentGateway = (*GeminiGateway)(nil)
	_ output.AgentGateway = (*ClaudeGateway)(nil)
	_ output.AgentGateway = (*MockGateway)(nil)
)

// NewAgentGateway creates an agent gateway based on agent type
// Supported types: gemini, claude, mock
func NewAgentGateway(agentType, apiKey string, opts Options) (output.AgentGateway, error) {
	switch strings.ToLower(strings.TrimSpace(agentType)) {
	case "", TypeGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("%w for %s", ErrMissingAPIKey, TypeGemini)
		}
		return NewGeminiGateway(apiKey, opts), nil

	case TypeClaude:
		if apiKey == "" {
			return nil, fmt.Errorf("%w for %s", ErrMissingAPIKey, TypeClaude)
		}
		return NewClaudeGateway(apiKey, opts), nil

	case TypeMock:
		return NewMockGateway(""), nil

	default:
		return nil, fmt.Errorf("unknown agent type: %s (supported: %s)", agentType, strings.Join(SupportedAgents(), ", "))
	}
}

// SupportedAgents returns every agent type the factory accepts
func SupportedAgents() []string {
	return []string{TypeGemini, TypeClaude, TypeMock}
}

// GetDefaultAgent returns the default agent type to use
func GetDefaultAgent() string {
	return TypeGemini
}
