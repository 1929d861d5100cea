package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agentgateway "github.com/YoshitsuguKoike/smartfarm/internal/adapter/gateway/agent"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

func TestCheckCommand_Reachable(t *testing.T) {
	env := newTestEnv()
	id := env.setupEntry(t)

	result, err := env.executeJSON(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "Agent reachable", result["message"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, id, data["entry_id"])
	assert.Equal(t, agentgateway.TypeMock, data["agent"])
}

func TestCheckCommand_Unreachable(t *testing.T) {
	env := newTestEnv()
	env.setupEntry(t)
	env.agent = &unreachableAgent{
		MockGateway: agentgateway.NewMockGateway(""),
		err:         errors.New("API key not valid"),
	}

	out, err := env.execute(t, nil, "check")
	require.Error(t, err)
	assert.Contains(t, out, "✗ Error: mock agent check failed: API key not valid")
}

func TestCheckCommand_NoEntry(t *testing.T) {
	env := newTestEnv()

	_, err := env.execute(t, nil, "check")
	assert.ErrorIs(t, err, entry.ErrNoEntries)
}

func TestRoot_UnknownOutputFormat(t *testing.T) {
	env := newTestEnv()

	out, err := env.execute(t, nil, "--output", "yaml", "entries")
	require.Error(t, err)
	assert.Contains(t, out, "unknown output format \"yaml\" (supported: cli, json)")
}
