// Package migrations embeds the SQLite schema for the slots table.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
