package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

const (
	// TypeGemini selects the Google Gemini API
	TypeGemini = "gemini"

	// DefaultGeminiModel is the model used by the original integration
	DefaultGeminiModel = "gemini-pro"

	geminiAPIVersion = "v1beta"
)

var errNoCandidates = errors.New("response contained no candidates")

// GeminiGateway implements AgentGateway on the Gemini API via the genai SDK
type GeminiGateway struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiGateway creates a new Gemini gateway. An empty BaseURL uses the SDK endpoint.
func NewGeminiGateway(apiKey string, opts Options) *GeminiGateway {
	return &GeminiGateway{
		apiKey:     apiKey,
		baseURL:    opts.BaseURL,
		model:      opts.modelOr(DefaultGeminiModel),
		httpClient: opts.client(),
	}
}

// Name returns the agent type
func (g *GeminiGateway) Name() string {
	return TypeGemini
}

// Execute sends the prompt as a single user turn and returns the first candidate's text
func (g *GeminiGateway) Execute(ctx context.Context, req output.AgentRequest) (*output.AgentResponse, error) {
	start := time.Now()

	client, err := g.newClient(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini API call failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return nil, fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return nil, errNoCandidates
	}
	candidate := resp.Candidates[0]

	// A blocked or truncated candidate carries a finish reason but no text
	text := resp.Text()
	if text == "" && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("no text in response (finish reason %s)", candidate.FinishReason)
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &output.AgentResponse{
		Output:     text,
		Duration:   time.Since(start),
		TokensUsed: tokens,
		AgentType:  TypeGemini,
		Metadata: map[string]string{
			"model":         g.model,
			"finish_reason": string(candidate.FinishReason),
		},
	}, nil
}

// HealthCheck verifies the configured model is reachable with the API key
func (g *GeminiGateway) HealthCheck(ctx context.Context) error {
	client, err := g.newClient(ctx)
	if err != nil {
		return err
	}
	if _, err := client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("Gemini model %s unavailable: %w", g.model, err)
	}
	return nil
}

func (g *GeminiGateway) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    g.baseURL,
			APIVersion: geminiAPIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return client, nil
}
