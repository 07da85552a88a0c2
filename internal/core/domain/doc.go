// Package domain defines the core business entities for techassist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PlaybookDocument: A static incident-response playbook
//   - WorkOrder: A maintenance task assigned to a technician
//   - Intent: The response category chosen for a technician question
//   - ConversationMessage: One entry in an assistant session
//   - PendingSync: A local change waiting to reach the backend
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
