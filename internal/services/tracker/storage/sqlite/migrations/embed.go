// Package migrations contains embedded SQL migrations for the profile catalog.
package migrations

import "embed"

//go:embed profiles/*.sql
var ProfilesFS embed.FS
