package services

import (
	"strings"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// intentRule maps a set of substrings to an intent.
type intentRule struct {
	intent   domain.Intent
	keywords []string
}

// intentRules are evaluated in order; the first match wins. Questions often
// mix keywords ("next steps for safety"), so the order is part of the contract.
var intentRules = []intentRule{
	{domain.IntentSafety, []string{"safety"}},
	{domain.IntentTools, []string{"tools", "gear"}},
	{domain.IntentValidation, []string{"validate", "verification"}},
	{domain.IntentEscalation, []string{"escalate", "supervisor"}},
	{domain.IntentNextSteps, []string{"next", "step", "fix"}},
}

// IntentClassifier maps free text to a response intent by substring match.
type IntentClassifier struct {
	rules []intentRule
}

// NewIntentClassifier creates a classifier with the built-in rules.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{rules: intentRules}
}

// Classify returns the first matching intent, or Summary if nothing matches.
func (c *IntentClassifier) Classify(text string) domain.Intent {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return domain.IntentSummary
}
