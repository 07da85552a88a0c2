package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask <task-id> <question>", askCmd.Use)
}

func TestAskCmd_AnswersFromPlaybook(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "ask", "WO-2024-001", "what", "tools", "do", "I", "need?")

	require.NoError(t, err)
	assert.Contains(t, out, "Recommended tools for this task:")
}

func TestAskCmd_UnknownWorkOrder(t *testing.T) {
	setupCLI(t, false)

	_, err := execute(t, "", "ask", "WO-404", "next?")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	setupCLI(t, false)

	_, err := execute(t, "", "ask", "WO-2024-001")

	assert.Error(t, err)
}

func TestAskCmd_NotConfigured(t *testing.T) {
	SetServices(Services{})

	_, err := execute(t, "", "ask", "WO-2024-001", "hi")

	assert.EqualError(t, err, "assistant service not configured")
}
