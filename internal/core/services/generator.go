package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// Fallback replies used when a work order has no playbook.
const (
	genericSafety     = "Wear ESD protection, power down equipment before servicing, and follow local data center safety policy."
	genericTools      = "Gather the standard field kit (ESD strap, flashlight, torque driver) before proceeding."
	genericValidation = "Validate that the system boots, services are restored, and monitoring clears the original alert."
	genericEscalation = "Escalate to your shift supervisor if the incident cannot be cleared within the SLA " +
		"or if additional authorization is required."
)

const bullet = "• "

// ResponseGenerator turns an intent into reply text.
// It is stateless and safe for concurrent use.
type ResponseGenerator struct{}

// NewResponseGenerator creates a response generator.
func NewResponseGenerator() *ResponseGenerator {
	return &ResponseGenerator{}
}

// Greeting returns the opening assistant message for a session.
func (g *ResponseGenerator) Greeting(doc *domain.PlaybookDocument, wo domain.WorkOrder) string {
	if doc != nil {
		return fmt.Sprintf(
			"I’m ready to help with **%s** for work order **%s**. "+
				"Ask me about safety precautions, troubleshooting steps, or how to escalate this incident.",
			doc.Title, wo.TaskID,
		)
	}
	return fmt.Sprintf(
		"I’m ready to help with work order **%s**. Ask about safety, next steps, or escalation guidance.",
		wo.TaskID,
	)
}

// Generate builds the reply for intent. doc may be nil.
func (g *ResponseGenerator) Generate(intent domain.Intent, doc *domain.PlaybookDocument, wo domain.WorkOrder) string {
	switch intent {
	case domain.IntentSafety:
		if doc != nil {
			return "Safety checklist:\n" + bulleted(doc.SafetyNotes)
		}
		return genericSafety

	case domain.IntentTools:
		if doc != nil {
			return "Recommended tools for this task:\n" + bulleted(doc.RecommendedTools)
		}
		return genericTools

	case domain.IntentValidation:
		if doc != nil {
			return "Validation steps:\n" + numbered(doc.ValidationSteps)
		}
		return genericValidation

	case domain.IntentEscalation:
		if doc != nil {
			return doc.EscalationGuidance
		}
		return genericEscalation

	case domain.IntentNextSteps:
		if doc != nil {
			return "Next recommended steps:\n" + numbered(doc.ResolutionSteps)
		}
		// Without a playbook there are no steps to list; answer with the summary.
		return g.summary(doc, wo)

	case domain.IntentSummary:
		return g.summary(doc, wo)
	}

	return g.summary(doc, wo)
}

func (g *ResponseGenerator) summary(doc *domain.PlaybookDocument, wo domain.WorkOrder) string {
	if doc == nil {
		return fmt.Sprintf(
			"I'm monitoring work order %s. Ask about next steps, safety guidance, or when to escalate.",
			wo.TaskID,
		)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's a quick summary for %s:\n", doc.Title)
	fmt.Fprintf(&b, "%sPrimary symptoms: %s\n", bullet, strings.Join(firstN(doc.Symptoms, 2), ", "))
	fmt.Fprintf(&b, "%sImmediate actions: %s\n", bullet, strings.Join(firstN(doc.ImmediateActions, 2), "; "))
	fmt.Fprintf(&b, "%sEstimated time: %d minutes\n", bullet, doc.EstimatedMinutes)
	b.WriteString("Ask about safety, tools, validation, or escalation for more detail.")
	return b.String()
}

func bulleted(items []string) string {
	return bullet + strings.Join(items, "\n"+bullet)
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = strconv.Itoa(i+1) + ". " + item
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
