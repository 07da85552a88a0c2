// Package tui provides an interactive terminal dashboard for techassist.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant opens conversations for work orders.
	Assistant driving.AssistantService

	// WorkOrders lists and resolves work orders.
	WorkOrders driving.WorkOrderService

	// Catalog is used for the queue briefing pane. Optional.
	Catalog driving.PlaybookCatalog
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.WorkOrders == nil {
		return ErrMissingWorkOrderService
	}
	return nil
}
