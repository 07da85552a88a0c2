package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func testDocument() *domain.PlaybookDocument {
	return &domain.PlaybookDocument{
		ID:                 "fan_failure",
		Title:              "Fan Failure",
		Summary:            "A chassis fan stopped.",
		Symptoms:           []string{"Fan RPM zero", "Inlet temp rising", "Alarm LED"},
		ImmediateActions:   []string{"Check airflow", "Notify NOC", "Open ticket"},
		ResolutionSteps:    []string{"Remove fan tray", "Insert replacement"},
		ValidationSteps:    []string{"Confirm RPM", "Clear alarm"},
		SafetyNotes:        []string{"Mind the blades", "Wear ESD strap"},
		RecommendedTools:   []string{"Fan tray", "Screwdriver"},
		EscalationGuidance: "Escalate to facilities if two fans fail.",
		EstimatedMinutes:   15,
	}
}

func TestResponseGenerator_WithDocument(t *testing.T) {
	gen := NewResponseGenerator()
	doc := testDocument()
	wo := domain.WorkOrder{TaskID: "WO-7"}

	tests := []struct {
		intent domain.Intent
		want   string
	}{
		{domain.IntentSafety, "Safety checklist:\n• Mind the blades\n• Wear ESD strap"},
		{domain.IntentTools, "Recommended tools for this task:\n• Fan tray\n• Screwdriver"},
		{domain.IntentValidation, "Validation steps:\n1. Confirm RPM\n2. Clear alarm"},
		{domain.IntentEscalation, "Escalate to facilities if two fans fail."},
		{domain.IntentNextSteps, "Next recommended steps:\n1. Remove fan tray\n2. Insert replacement"},
		{domain.IntentSummary, "Here's a quick summary for Fan Failure:\n" +
			"• Primary symptoms: Fan RPM zero, Inlet temp rising\n" +
			"• Immediate actions: Check airflow; Notify NOC\n" +
			"• Estimated time: 15 minutes\n" +
			"Ask about safety, tools, validation, or escalation for more detail."},
	}
	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, gen.Generate(tt.intent, doc, wo))
		})
	}
}

func TestResponseGenerator_WithoutDocument(t *testing.T) {
	gen := NewResponseGenerator()
	wo := domain.WorkOrder{TaskID: "WO-9"}
	summary := "I'm monitoring work order WO-9. Ask about next steps, safety guidance, or when to escalate."

	tests := []struct {
		intent domain.Intent
		want   string
	}{
		{domain.IntentSafety, genericSafety},
		{domain.IntentTools, genericTools},
		{domain.IntentValidation, genericValidation},
		{domain.IntentEscalation, genericEscalation},
		{domain.IntentNextSteps, summary},
		{domain.IntentSummary, summary},
	}
	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, gen.Generate(tt.intent, nil, wo))
		})
	}
}

func TestResponseGenerator_GenericEscalationNamesSupervisor(t *testing.T) {
	text := NewResponseGenerator().Generate(domain.IntentEscalation, nil, domain.WorkOrder{})
	assert.Contains(t, text, "shift supervisor")
	assert.Contains(t, text, "SLA")
}

func TestResponseGenerator_PowerSupplyNextSteps(t *testing.T) {
	catalog := newTestCatalog(t)
	doc := catalog.Lookup(domain.DocumentPowerSupplyFailure)
	require.NotNil(t, doc)

	text := NewResponseGenerator().Generate(domain.IntentNextSteps, doc, domain.WorkOrder{TaskID: "WO-1"})
	lines := strings.Split(text, "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "Next recommended steps:", lines[0])
	assert.Equal(t,
		"1. Disconnect the failed PSU from both A/B feeds and allow capacitors to discharge (minimum 30 seconds)",
		lines[1])
	assert.Equal(t, "5. Monitor boot sequence through out-of-band management console", lines[5])
}

func TestResponseGenerator_PreservesDeclaredOrder(t *testing.T) {
	doc := testDocument()
	doc.SafetyNotes = []string{"zeta", "alpha", "mu"}

	text := NewResponseGenerator().Generate(domain.IntentSafety, doc, domain.WorkOrder{})
	assert.Equal(t, "Safety checklist:\n• zeta\n• alpha\n• mu", text)
}

func TestResponseGenerator_SummaryShortLists(t *testing.T) {
	doc := testDocument()
	doc.Symptoms = []string{"only one"}
	doc.ImmediateActions = nil

	text := NewResponseGenerator().Generate(domain.IntentSummary, doc, domain.WorkOrder{})
	assert.Contains(t, text, "• Primary symptoms: only one\n")
	assert.Contains(t, text, "• Immediate actions: \n")
}

func TestResponseGenerator_Greeting(t *testing.T) {
	gen := NewResponseGenerator()
	wo := domain.WorkOrder{TaskID: "WO-2024-001"}

	withDoc := gen.Greeting(testDocument(), wo)
	assert.Equal(t,
		"I’m ready to help with **Fan Failure** for work order **WO-2024-001**. "+
			"Ask me about safety precautions, troubleshooting steps, or how to escalate this incident.",
		withDoc)

	withoutDoc := gen.Greeting(nil, wo)
	assert.Equal(t,
		"I’m ready to help with work order **WO-2024-001**. Ask about safety, next steps, or escalation guidance.",
		withoutDoc)
}
