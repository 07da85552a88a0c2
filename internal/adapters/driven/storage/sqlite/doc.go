// Package sqlite persists work orders and the sync outbox in a local SQLite
// database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single Store exposes two ports over one connection:
//
//   - WorkOrderStore: the technician's local copy of assigned work orders
//   - SyncOutbox: local changes the backend has not accepted yet
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.techassist/data/techassist.db
package sqlite
