package mcp

import (
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// ToolMetrics counts tool invocations.
type ToolMetrics interface {
	ToolCalled(tool string, success bool)
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions about work orders.
	Assistant driving.AssistantService

	// Catalog serves playbooks.
	Catalog driving.PlaybookCatalog

	// WorkOrders backs the work order tools. Optional.
	WorkOrders driving.WorkOrderService

	// Metrics is optional.
	Metrics ToolMetrics
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	if p.Catalog == nil {
		return ErrMissingCatalog
	}
	return nil
}
