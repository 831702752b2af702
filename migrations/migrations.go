// Package migrations embeds the versioned PostgreSQL schema.
package migrations

import "embed"

// FS holds the NNNNNN_name.{up,down}.sql files read by golang-migrate.
//
//go:embed *.sql
var FS embed.FS
