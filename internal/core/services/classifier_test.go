package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestIntentClassifier_Classify(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		text string
		want domain.Intent
	}{
		{"What safety gear do I need?", domain.IntentSafety},
		{"SAFETY first", domain.IntentSafety},
		{"Which tools should I bring?", domain.IntentTools},
		{"what gear", domain.IntentTools},
		{"How do I validate the fix?", domain.IntentValidation},
		{"verification checklist", domain.IntentValidation},
		{"When should I escalate?", domain.IntentEscalation},
		{"call my supervisor", domain.IntentEscalation},
		{"What's next?", domain.IntentNextSteps},
		{"first step", domain.IntentNextSteps},
		{"how do I fix this", domain.IntentNextSteps},
		{"hello", domain.IntentSummary},
		{"", domain.IntentSummary},
		{"   ", domain.IntentSummary},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.text))
		})
	}
}

func TestIntentClassifier_PriorityOrder(t *testing.T) {
	classifier := NewIntentClassifier()

	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{"safety beats next steps", "next steps for safety", domain.IntentSafety},
		{"safety beats tools", "safety tools", domain.IntentSafety},
		{"tools beats validation", "tools to validate", domain.IntentTools},
		{"validation beats escalation", "validate before I escalate", domain.IntentValidation},
		{"escalation beats next steps", "next, escalate", domain.IntentEscalation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.text))
		})
	}
}

func TestIntentClassifier_SubstringMatch(t *testing.T) {
	classifier := NewIntentClassifier()

	// No word boundaries.
	assert.Equal(t, domain.IntentNextSteps, classifier.Classify("prefix"))
	assert.Equal(t, domain.IntentNextSteps, classifier.Classify("footsteps"))
}
