package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntent_String(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected string
	}{
		{IntentSafety, "safety"},
		{IntentTools, "tools"},
		{IntentValidation, "validation"},
		{IntentEscalation, "escalation"},
		{IntentNextSteps, "next_steps"},
		{IntentSummary, "summary"},
		{Intent(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.intent.String())
		})
	}
}

func TestAllIntents_PriorityOrder(t *testing.T) {
	intents := AllIntents()

	assert.Len(t, intents, 6)
	assert.Equal(t, IntentSafety, intents[0])
	assert.Equal(t, IntentSummary, intents[len(intents)-1])
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "idle", SessionIdle.String())
	assert.Equal(t, "awaiting_reply", SessionAwaitingReply.String())
	assert.Equal(t, "unknown", SessionState(7).String())
}
