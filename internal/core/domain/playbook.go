package domain

// Canonical playbook identifiers.
const (
	DocumentPowerSupplyFailure = "power_supply_failure"
	DocumentThermalEvent       = "thermal_event"
	DocumentNetworkOutage      = "network_outage"
	DocumentRAIDDegradation    = "raid_degradation"
	DocumentFirmwareMismatch   = "firmware_mismatch"
)

// CanonicalDocumentIDs returns the playbook IDs every catalog must carry.
func CanonicalDocumentIDs() []string {
	return []string{
		DocumentPowerSupplyFailure,
		DocumentThermalEvent,
		DocumentNetworkOutage,
		DocumentRAIDDegradation,
		DocumentFirmwareMismatch,
	}
}

// PlaybookDocument is a pre-authored incident-response document for one
// category of hardware fault. List order is significant and preserved.
type PlaybookDocument struct {
	// ID is the unique key referenced by work orders.
	ID string `yaml:"id" json:"id"`

	// Title is the display title.
	Title string `yaml:"title" json:"title"`

	// Summary is a short description of the incident class.
	Summary string `yaml:"summary" json:"summary"`

	Symptoms         []string `yaml:"symptoms" json:"symptoms"`
	ImmediateActions []string `yaml:"immediate_actions" json:"immediate_actions"`
	ResolutionSteps  []string `yaml:"resolution_steps" json:"resolution_steps"`
	ValidationSteps  []string `yaml:"validation_steps" json:"validation_steps"`
	SafetyNotes      []string `yaml:"safety_notes" json:"safety_notes"`
	RecommendedTools []string `yaml:"recommended_tools" json:"recommended_tools"`

	// EscalationGuidance tells the technician when and how to escalate.
	EscalationGuidance string `yaml:"escalation_guidance" json:"escalation_guidance"`

	// EstimatedMinutes is the expected time to resolve. Always positive.
	EstimatedMinutes int `yaml:"estimated_minutes" json:"estimated_minutes"`
}

// Clone returns a deep copy so callers cannot mutate shared slices.
func (d PlaybookDocument) Clone() PlaybookDocument {
	d.Symptoms = cloneStrings(d.Symptoms)
	d.ImmediateActions = cloneStrings(d.ImmediateActions)
	d.ResolutionSteps = cloneStrings(d.ResolutionSteps)
	d.ValidationSteps = cloneStrings(d.ValidationSteps)
	d.SafetyNotes = cloneStrings(d.SafetyNotes)
	d.RecommendedTools = cloneStrings(d.RecommendedTools)
	return d
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
