package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

const (
	// TypeClaude selects the Anthropic messages API
	TypeClaude = "claude"

	// DefaultClaudeModel is used when no model is configured
	DefaultClaudeModel = "claude-3-5-sonnet-20241022"

	defaultClaudeURL       = "https://api.anthropic.com/v1"
	defaultClaudeMaxTokens = 4096
	anthropicVersion       = "2023-06-01"
)

// ClaudeGateway implements AgentGateway for the Anthropic messages API
type ClaudeGateway struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
	model      string
}

// NewClaudeGateway creates a new Claude gateway
func NewClaudeGateway(apiKey string, opts Options) *ClaudeGateway {
	return &ClaudeGateway{
		apiKey:     apiKey,
		apiURL:     strings.TrimSuffix(opts.baseURLOr(defaultClaudeURL), "/") + "/messages",
		httpClient: opts.client(),
		model:      opts.modelOr(DefaultClaudeModel),
	}
}

// Name returns the agent type
func (g *ClaudeGateway) Name() string {
	return TypeClaude
}

// Execute sends the prompt as one user message
func (g *ClaudeGateway) Execute(ctx context.Context, req output.AgentRequest) (*output.AgentResponse, error) {
	start := time.Now()

	// max_tokens is mandatory for the messages API
	claudeReq := ClaudeRequest{
		Model:     g.model,
		MaxTokens: defaultClaudeMaxTokens,
		Messages: []Message{
			{Role: "user", Content: req.Prompt},
		},
	}

	resp, err := g.callClaudeAPI(ctx, claudeReq)
	if err != nil {
		return nil, fmt.Errorf("Claude API call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "" || block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &output.AgentResponse{
		Output:     sb.String(),
		Duration:   time.Since(start),
		TokensUsed: resp.Usage.InputTokens + resp.Usage.OutputTokens,
		AgentType:  TypeClaude,
		Metadata: map[string]string{
			"model":         g.model,
			"stop_reason":   resp.StopReason,
			"input_tokens":  fmt.Sprintf("%d", resp.Usage.InputTokens),
			"output_tokens": fmt.Sprintf("%d", resp.Usage.OutputTokens),
		},
	}, nil
}

// HealthCheck verifies if Claude API is accessible
func (g *ClaudeGateway) HealthCheck(ctx context.Context) error {
	req := ClaudeRequest{
		Model:     g.model,
		MaxTokens: 10,
		Messages: []Message{
			{Role: "user", Content: "ping"},
		},
	}

	_, err := g.callClaudeAPI(ctx, req)
	return err
}

// callClaudeAPI makes an HTTP request to Claude API
func (g *ClaudeGateway) callClaudeAPI(ctx context.Context, req ClaudeRequest) (*ClaudeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	var claudeResp ClaudeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&claudeResp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("API error: status %d", httpResp.StatusCode)
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		if claudeResp.Error.Message != "" {
			return nil, fmt.Errorf("API error (%d): %s - %s", httpResp.StatusCode, claudeResp.Error.Type, claudeResp.Error.Message)
		}
		return nil, fmt.Errorf("API error: status %d", httpResp.StatusCode)
	}

	return &claudeResp, nil
}

// Claude API request/response types
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ClaudeResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Content    []ContentBlock  `json:"content"`
	Model      string          `json:"model"`
	StopReason string          `json:"stop_reason"`
	Usage      Usage           `json:"usage"`
	Error      ClaudeErrorResp `json:"error,omitempty"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type ClaudeErrorResp struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
