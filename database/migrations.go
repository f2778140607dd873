// Package database embeds the SQL migrations applied at startup.
package database

import "embed"

//go:embed migration/*.sql
var Migrations embed.FS

const MigrationDir = "migration"
