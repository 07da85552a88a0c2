// Package mcp provides an MCP (Model Context Protocol) server adapter for techassist.
// It lets AI agents ask the playbook assistant about work orders and read playbooks.
package mcp

import (
	"errors"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

var (
	// ErrMissingAssistantService is returned when the assistant service is not provided.
	ErrMissingAssistantService = errors.New("mcp: assistant service is required")

	// ErrMissingCatalog is returned when the playbook catalog is not provided.
	ErrMissingCatalog = errors.New("mcp: playbook catalog is required")

	// ErrWorkOrdersUnavailable is returned by work order tools when no
	// work order service is configured.
	ErrWorkOrdersUnavailable = errors.New("mcp: work order service not configured")
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
