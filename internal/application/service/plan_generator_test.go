package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAgent implements output.AgentGateway
type recordingAgent struct {
	resp    *output.AgentResponse
	err     error
	prompts []string
}

func (a *recordingAgent) Execute(ctx context.Context, req output.AgentRequest) (*output.AgentResponse, error) {
	a.prompts = append(a.prompts, req.Prompt)
	return a.resp, a.err
}

func (a *recordingAgent) HealthCheck(ctx context.Context) error { return nil }

func (a *recordingAgent) Name() string { return "recording" }

func TestPlanGenerator_Plan(t *testing.T) {
	agent := &recordingAgent{resp: &output.AgentResponse{Output: "PLAN_TEXT", Duration: time.Second}}
	gen := NewPlanGenerator(agent, NewPromptBuilderService("Tokyo", nil), nil)

	res := gen.Plan(context.Background(), "5 sq m", []string{"tomato", "basil"}, "2024-05-01")
	assert.True(t, res.OK())
	assert.Equal(t, "PLAN_TEXT", res.Message())

	require.Len(t, agent.prompts, 1)
	prompt := agent.prompts[0]
	assert.Contains(t, prompt, "- Available space: 5 sq m")
	assert.Contains(t, prompt, "- Desired plants: tomato, basil")
	assert.Contains(t, prompt, "- Planting date: 2024-05-01")
	assert.Contains(t, prompt, "- Location: Tokyo")
	assert.Contains(t, prompt, "1. Companion planting benefits")
	assert.Contains(t, prompt, "- Care instructions")
	assert.NotContains(t, prompt, "The garden has these beds")
}

func TestPlanGenerator_InBandErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(g *PlanGenerator) string
		want string
	}{
		{
			name: "plan",
			run: func(g *PlanGenerator) string {
				return g.GeneratePlantingPlan(context.Background(), "1m", []string{"pea"}, "")
			},
			want: "Error generating planting plan: invalid api key",
		},
		{
			name: "care",
			run: func(g *PlanGenerator) string {
				return g.GetPlantCareRecommendations(context.Background(), "pea")
			},
			want: "Error getting plant care recommendations: invalid api key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewPlanGenerator(&recordingAgent{err: errors.New("invalid api key")}, NewPromptBuilderService("Oslo", nil), nil)
			assert.Equal(t, tt.want, tt.run(gen))
		})
	}
}

func TestPlanGenerator_NilResponse(t *testing.T) {
	gen := NewPlanGenerator(&recordingAgent{}, NewPromptBuilderService("Oslo", nil), nil)

	res := gen.Care(context.Background(), "pea")
	assert.False(t, res.OK())
	assert.True(t, strings.HasPrefix(res.Message(), CareErrorPrefix))
}

func TestPromptBuilder_PlanIncludesBeds(t *testing.T) {
	beds := []bed.Definition{
		{Name: "Raised bed 1", Type: bed.TypeRaisedBed, Length: 3, Width: 1, ColdFrame: true, Sunlight: bed.SunlightDirect},
		{Name: "Pot 1", Type: bed.TypePot, Length: 1, Width: 1, Sunlight: bed.SunlightIndirect},
	}
	prompt := NewPromptBuilderService("Lyon", beds).BuildPlantingPlanPrompt("garden", []string{"leek"}, " ")

	assert.Contains(t, prompt, "- Planting date: not specified")
	assert.Contains(t, prompt, "- Raised bed 1: 3x1, direct sunlight, with cold frame")
	assert.Contains(t, prompt, "- Pot 1: 1x1, indirect sunlight\n")
}

func TestPromptBuilder_Care(t *testing.T) {
	prompt := NewPromptBuilderService("Lyon", nil).BuildPlantCarePrompt("leek")

	assert.True(t, strings.HasPrefix(prompt, "As a gardening expert, provide detailed care recommendations for leek in Lyon."))
	for _, item := range []string{"Watering requirements", "Sunlight needs", "Soil preferences", "Common issues and solutions", "Harvesting tips"} {
		assert.Contains(t, prompt, item)
	}
}
