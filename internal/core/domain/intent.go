package domain

// Intent is the closed category a technician question is mapped to.
type Intent int

// Intents in classification priority order.
const (
	IntentSafety Intent = iota
	IntentTools
	IntentValidation
	IntentEscalation
	IntentNextSteps
	IntentSummary
)

// String returns the string representation.
func (i Intent) String() string {
	switch i {
	case IntentSafety:
		return "safety"
	case IntentTools:
		return "tools"
	case IntentValidation:
		return "validation"
	case IntentEscalation:
		return "escalation"
	case IntentNextSteps:
		return "next_steps"
	case IntentSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// AllIntents returns every intent in priority order.
func AllIntents() []Intent {
	return []Intent{
		IntentSafety,
		IntentTools,
		IntentValidation,
		IntentEscalation,
		IntentNextSteps,
		IntentSummary,
	}
}

// Answer is a one-shot assistant reply outside a session.
type Answer struct {
	TaskID   string
	Question string
	Intent   Intent
	Text     string
}
