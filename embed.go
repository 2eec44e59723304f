// Package hybridreality holds assets that ship inside the compiled binary.
package hybridreality

import "embed"

// Migrations contains the goose migration files applied by the migrate
// command and by integration tests.
//
//go:embed migrations/*.sql
var Migrations embed.FS
