// Package migrations embeds the ledger schema so the binary can migrate
// its own database on startup.
package migrations

import "embed"

// FS holds the SQL files read by the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
