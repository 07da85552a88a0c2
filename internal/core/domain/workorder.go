package domain

import "time"

// Priority ranks how urgently a work order must be handled.
type Priority string

// Work order priorities, most urgent first.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// IsValid returns true if the priority is recognised.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}

// DisplayName returns the label shown to technicians.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return "Unknown"
	}
}

// Status is the lifecycle state of a work order.
type Status string

// Work order statuses.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on_hold"
)

// IsValid returns true if the status is recognised.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// WorkOrder is a maintenance task assigned to a field technician.
// The assistant only reads it; status changes go through the work order service.
type WorkOrder struct {
	// TaskID is the unique, human-facing identifier (e.g. "WO-2024-001").
	TaskID string `yaml:"task_id" json:"task_id"`

	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Location details.
	Location       string `yaml:"location,omitempty" json:"location,omitempty"`
	DataHall       string `yaml:"data_hall,omitempty" json:"data_hall,omitempty"`
	RackNumber     string `yaml:"rack_number,omitempty" json:"rack_number,omitempty"`
	ServerPosition string `yaml:"server_position,omitempty" json:"server_position,omitempty"`
	LocationCode   string `yaml:"location_code,omitempty" json:"location_code,omitempty"`

	// Impact details.
	UsersAffected   int      `yaml:"users_affected,omitempty" json:"users_affected,omitempty"`
	BusinessImpact  string   `yaml:"business_impact,omitempty" json:"business_impact,omitempty"`
	SystemsAffected []string `yaml:"systems_affected,omitempty" json:"systems_affected,omitempty"`

	// Planning details.
	TimeEstimate  string   `yaml:"time_estimate,omitempty" json:"time_estimate,omitempty"`
	RequiredTools []string `yaml:"required_tools,omitempty" json:"required_tools,omitempty"`
	SkillsNeeded  []string `yaml:"skills_needed,omitempty" json:"skills_needed,omitempty"`
	Equipment     string   `yaml:"equipment,omitempty" json:"equipment,omitempty"`

	// QRCodeData is the payload printed on the rack label for location checks.
	QRCodeData string `yaml:"qr_code_data,omitempty" json:"qr_code_data,omitempty"`

	// DueDate is when the work must be finished. Zero means no deadline.
	DueDate time.Time `yaml:"due_date,omitempty" json:"due_date,omitempty"`

	Priority Priority `yaml:"priority" json:"priority"`
	Status   Status   `yaml:"status" json:"status"`

	// IssueDocumentID references a playbook. Empty means none.
	IssueDocumentID string `yaml:"issue_document_id,omitempty" json:"issue_document_id,omitempty"`

	// UpdatedAt is when the order last changed locally.
	UpdatedAt time.Time `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsCompleted returns true if the order has been resolved.
func (w WorkOrder) IsCompleted() bool {
	return w.Status == StatusCompleted
}

// HasDueDate returns true if a deadline is set.
func (w WorkOrder) HasDueDate() bool {
	return !w.DueDate.IsZero()
}

// PriorityQueue groups open work orders by priority.
type PriorityQueue struct {
	Critical []WorkOrder
	High     []WorkOrder
	Medium   []WorkOrder
	Low      []WorkOrder
}

// Len returns the number of open orders across all buckets.
func (q PriorityQueue) Len() int {
	return len(q.Critical) + len(q.High) + len(q.Medium) + len(q.Low)
}

// Ordered returns all orders, most urgent bucket first.
func (q PriorityQueue) Ordered() []WorkOrder {
	out := make([]WorkOrder, 0, q.Len())
	out = append(out, q.Critical...)
	out = append(out, q.High...)
	out = append(out, q.Medium...)
	out = append(out, q.Low...)
	return out
}

// Briefing is the condensed playbook section shown on a work order.
type Briefing struct {
	WorkOrder WorkOrder

	// Document is nil when the order has no (known) playbook.
	Document *PlaybookDocument

	// ImmediateActions holds at most the first three immediate actions.
	ImmediateActions []string

	// NextStep is the first resolution step, empty if none.
	NextStep string
}

// ResolveResult reports the outcome of marking a work order resolved.
type ResolveResult struct {
	// Order is the updated order as stored locally.
	Order WorkOrder

	// Synced is true when the backend accepted the change.
	Synced bool

	// SyncErr is the backend failure reason when Synced is false.
	SyncErr error
}
