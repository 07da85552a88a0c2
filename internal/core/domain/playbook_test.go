package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalDocumentIDs(t *testing.T) {
	ids := CanonicalDocumentIDs()

	assert.Len(t, ids, 5)
	assert.Contains(t, ids, "power_supply_failure")
	assert.Contains(t, ids, "thermal_event")
	assert.Contains(t, ids, "network_outage")
	assert.Contains(t, ids, "raid_degradation")
	assert.Contains(t, ids, "firmware_mismatch")
}

func TestPlaybookDocument_Clone(t *testing.T) {
	original := PlaybookDocument{
		ID:          "doc",
		Symptoms:    []string{"a", "b"},
		SafetyNotes: []string{"wear ESD strap"},
	}

	clone := original.Clone()
	clone.Symptoms[0] = "changed"
	clone.SafetyNotes = append(clone.SafetyNotes, "extra")

	assert.Equal(t, "a", original.Symptoms[0])
	assert.Len(t, original.SafetyNotes, 1)
	assert.Nil(t, clone.ResolutionSteps)
}
