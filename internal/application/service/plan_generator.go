package service

import (
	"context"
	"errors"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"go.uber.org/zap"
)

const (
	// PlanErrorPrefix starts the in-band message for a failed planting plan
	PlanErrorPrefix = "Error generating planting plan: "

	// CareErrorPrefix starts the in-band message for failed care recommendations
	CareErrorPrefix = "Error getting plant care recommendations: "
)

var errEmptyResponse = errors.New("empty response from text generation service")

// Result is the outcome of one generation call.
// Exactly one of Text and Err is meaningful.
type Result struct {
	Text   string
	Err    error
	prefix string
}

// OK reports whether generation succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Message converts the result to the in-band string form: the generated
// text, or the error prefix followed by the failure description.
// This is the only place that produces the error string.
func (r Result) Message() string {
	if r.Err != nil {
		return r.prefix + r.Err.Error()
	}
	return r.Text
}

// PlanGenerator formats gardening prompts and forwards them to a language model.
// It holds no state between calls and performs no retries.
type PlanGenerator struct {
	gateway output.AgentGateway
	prompts *PromptBuilderService
	logger  *zap.Logger
}

// NewPlanGenerator creates a generator over gateway
func NewPlanGenerator(gateway output.AgentGateway, prompts *PromptBuilderService, logger *zap.Logger) *PlanGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanGenerator{
		gateway: gateway,
		prompts: prompts,
		logger:  logger,
	}
}

// Plan generates a planting plan and returns the tagged result
func (g *PlanGenerator) Plan(ctx context.Context, availableSpace string, desiredPlants []string, plantingDate string) Result {
	prompt := g.prompts.BuildPlantingPlanPrompt(availableSpace, desiredPlants, plantingDate)
	return g.execute(ctx, prompt, PlanErrorPrefix)
}

// Care generates plant care recommendations and returns the tagged result
func (g *PlanGenerator) Care(ctx context.Context, plant string) Result {
	prompt := g.prompts.BuildPlantCarePrompt(plant)
	return g.execute(ctx, prompt, CareErrorPrefix)
}

// GeneratePlantingPlan returns the plan text or an in-band error message.
// It never fails.
func (g *PlanGenerator) GeneratePlantingPlan(ctx context.Context, availableSpace string, desiredPlants []string, plantingDate string) string {
	return g.Plan(ctx, availableSpace, desiredPlants, plantingDate).Message()
}

// GetPlantCareRecommendations returns the recommendation text or an in-band error message.
// It never fails.
func (g *PlanGenerator) GetPlantCareRecommendations(ctx context.Context, plant string) string {
	return g.Care(ctx, plant).Message()
}

func (g *PlanGenerator) execute(ctx context.Context, prompt, errPrefix string) Result {
	resp, err := g.gateway.Execute(ctx, output.AgentRequest{Prompt: prompt})
	if err != nil {
		g.logger.Error(strings.TrimSuffix(errPrefix, ": "), zap.String("agent", g.gateway.Name()), zap.Error(err))
		return Result{Err: err, prefix: errPrefix}
	}
	if resp == nil {
		return Result{Err: errEmptyResponse, prefix: errPrefix}
	}
	g.logger.Debug("generation finished",
		zap.String("agent", resp.AgentType),
		zap.Duration("duration", resp.Duration),
		zap.Int("tokens", resp.TokensUsed))
	return Result{Text: resp.Output, prefix: errPrefix}
}
