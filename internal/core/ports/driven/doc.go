// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - PlaybookSource: Supplies the static playbook table at startup
//   - WorkOrderStore: Local work order persistence
//   - SyncOutbox: Queue of local changes the backend has not accepted
//   - ReplyScheduler: Runs the assistant's delayed reply off the caller's goroutine
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - WorkOrderStore (remote): Without it, resolved orders stay local and queue for sync.
//   - WorkOrderFeed: Dispatch file import. Without it, orders come from the store only.
//   - Metrics: Operational counters. Without it, nothing is recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
