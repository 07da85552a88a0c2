// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The assistant lives here: the intent classifier, the response
// generator and the conversation session that delivers replies through
// an injected scheduler. Work order services keep the local store
// authoritative and queue failed backend pushes for the sync retrier.
package services
