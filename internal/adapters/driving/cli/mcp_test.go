package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	flags := mcpServeCmd.Flags()

	port := flags.Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	rate := flags.Lookup("rate")
	require.NotNil(t, rate)
	assert.Equal(t, "0", rate.DefValue)

	burst := flags.Lookup("burst")
	require.NotNil(t, burst)
	assert.Equal(t, "10", burst.DefValue)
}

func TestMCPCmd_HasServe(t *testing.T) {
	var names []string
	for _, c := range mcpCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	SetServices(nil)

	_, err := execute(t, "", "mcp", "serve")

	assert.ErrorIs(t, err, mcp.ErrMissingCalculatorService)
}
