// Package driving defines the interfaces the CLI, TUI and MCP server use
// to reach core services: the assistant and its conversations, the
// playbook catalog, work orders, background sync and settings.
//
// Implementations live in internal/core/services.
package driving
