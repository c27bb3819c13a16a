// Package migrations embeds the PostgreSQL schema for the slots table.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
