package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestPlaybookListCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "playbook", "list")

	require.NoError(t, err)
	for _, id := range domain.CanonicalDocumentIDs() {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "Total: 5 playbooks")
}

func TestPlaybookShowCmd(t *testing.T) {
	setupCLI(t, false)

	out, err := execute(t, "", "playbook", "show", "power_supply_failure")

	require.NoError(t, err)
	assert.Contains(t, out, "Power Supply Failure Response (power_supply_failure)")
	assert.Contains(t, out, "Resolution steps:")
	assert.Contains(t, out, "  1. Disconnect the failed PSU")
	assert.Contains(t, out, "Escalation:")
}

func TestPlaybookShowCmd_Unknown(t *testing.T) {
	setupCLI(t, false)

	_, err := execute(t, "", "playbook", "show", "flux_capacitor")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
