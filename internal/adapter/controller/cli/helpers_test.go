package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	agentgateway "github.com/YoshitsuguKoike/smartfarm/internal/adapter/gateway/agent"
	storagegateway "github.com/YoshitsuguKoike/smartfarm/internal/adapter/gateway/storage"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/infrastructure/di"
)

const testHome = "/garden"

// testEnv shares one in-memory home across command invocations
type testEnv struct {
	fs        afero.Fs
	snapshots *storagegateway.MemorySnapshotGateway
	agent     output.AgentGateway
}

// unreachableAgent generates nothing and fails its health check
type unreachableAgent struct {
	*agentgateway.MockGateway
	err error
}

func (a *unreachableAgent) HealthCheck(ctx context.Context) error {
	return a.err
}

func newTestEnv() *testEnv {
	return &testEnv{
		fs:        afero.NewMemMapFs(),
		snapshots: storagegateway.NewMemorySnapshotGateway(),
		agent:     agentgateway.NewMockGateway("PLAN_TEXT"),
	}
}

func (e *testEnv) factory(ctx context.Context, opts GlobalOptions) (Services, error) {
	home := opts.Home
	if home == "" {
		home = testHome
	}
	c, err := di.NewContainer(ctx, di.Config{
		Home:            home,
		EntryID:         opts.EntryID,
		OutputFormat:    opts.OutputFormat,
		OutputWriter:    opts.Out,
		LogWriter:       io.Discard,
		LogLevel:        opts.LogLevel,
		AgentType:       opts.Agent,
		Fs:              e.fs,
		AgentGateway:    e.agent,
		SnapshotGateway: e.snapshots,
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// execute runs one command line and returns everything written to stdout and stderr
func (e *testEnv) execute(t *testing.T, prompter Prompter, args ...string) (string, error) {
	t.Helper()
	if prompter == nil {
		prompter = &scriptedPrompter{t: t}
	}
	builder := NewRootBuilder(e.factory, prompter, "1.2.3", "test-build")
	cmd := builder.Build()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	require.NoError(t, builder.Close())
	return out.String(), err
}

// executeJSON runs a command with --output json and decodes the result
func (e *testEnv) executeJSON(t *testing.T, args ...string) (map[string]interface{}, error) {
	t.Helper()
	out, err := e.execute(t, nil, append([]string{"--output", "json"}, args...)...)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	return result, err
}

// setupEntry creates one entry through the setup command and returns its ID
func (e *testEnv) setupEntry(t *testing.T, extra ...string) string {
	t.Helper()
	args := append([]string{"setup", "--api-key", "test-key", "--location", "home"}, extra...)
	result, err := e.executeJSON(t, args...)
	require.NoError(t, err)
	data := result["data"].(map[string]interface{})
	return data["id"].(string)
}

// scriptedPrompter answers prompts from a fixed script.
// Input takes a string, Select an int and Confirm a bool.
type scriptedPrompter struct {
	t       *testing.T
	answers []interface{}
	labels  []string
}

func (p *scriptedPrompter) next(label string) interface{} {
	p.labels = append(p.labels, label)
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected prompt %q", label)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

func (p *scriptedPrompter) Input(label, def string, validate func(string) error, mask bool) (string, error) {
	answer, ok := p.next(label).(string)
	if !ok {
		return "", fmt.Errorf("prompt %q: expected string answer", label)
	}
	if answer == "" {
		answer = def
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (p *scriptedPrompter) Select(label string, items []string) (int, error) {
	answer, ok := p.next(label).(int)
	if !ok || answer < 0 || answer >= len(items) {
		return 0, fmt.Errorf("prompt %q: bad select answer", label)
	}
	return answer, nil
}

func (p *scriptedPrompter) Confirm(label string) (bool, error) {
	answer, ok := p.next(label).(bool)
	if !ok {
		return false, fmt.Errorf("prompt %q: expected bool answer", label)
	}
	return answer, nil
}
