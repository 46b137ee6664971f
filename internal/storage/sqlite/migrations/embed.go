package migrations

import "embed"

// FS contains embedded SQLite migrations for puzzle storage.
//
//go:embed *.sql
var FS embed.FS
