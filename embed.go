// Package homecatalog holds assets embedded into the binary at build time.
package homecatalog

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
