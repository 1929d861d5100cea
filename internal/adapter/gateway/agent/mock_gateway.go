package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

// TypeMock selects the offline gateway
const TypeMock = "mock"

// MockGateway answers every prompt locally without network access.
// It is used for dry runs and demos.
type MockGateway struct {
	output string
}

// NewMockGateway creates a mock gateway. An empty output echoes a prompt preview.
func NewMockGateway(output string) *MockGateway {
	return &MockGateway{output: output}
}

// Name returns the agent type
func (g *MockGateway) Name() string {
	return TypeMock
}

// Execute returns the fixed output
func (g *MockGateway) Execute(ctx context.Context, req output.AgentRequest) (*output.AgentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := g.output
	if text == "" {
		preview := []rune(req.Prompt)
		if len(preview) > 50 {
			preview = append(preview[:50], []rune("...")...)
		}
		text = fmt.Sprintf("[Mock] Response for: %s", string(preview))
	}

	return &output.AgentResponse{
		Output:     text,
		Duration:   time.Millisecond,
		TokensUsed: len(req.Prompt) / 4, // Rough estimate
		AgentType:  TypeMock,
		Metadata: map[string]string{
			"mock": "true",
		},
	}, nil
}

// HealthCheck always returns success for mock
func (g *MockGateway) HealthCheck(ctx context.Context) error {
	return nil
}
