package cli

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMCPServer_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := newMCPServer()
	assert.Error(t, err)
}

func TestNewMCPServer(t *testing.T) {
	setupCLI(t, false)
	metricsHandler = http.NotFoundHandler()
	defer func() { metricsHandler = nil }()

	server, err := newMCPServer()
	require.NoError(t, err)
	assert.NotNil(t, server.Handler())
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "0", flag.DefValue)
	assert.Equal(t, "p", flag.Shorthand)
}
