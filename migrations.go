// Package football is the root of the football-data.org client module. It
// only embeds the SQL migrations so that the migrate command and the storage
// tests share a single copy.
package football

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
