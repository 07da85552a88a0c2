// Package migrations holds the versioned schema for the local work order database.
package migrations

import "embed"

// FS contains the NNN_name.up.sql and .down.sql files.
//
//go:embed *.sql
var FS embed.FS
