// Package migrations embeds the storefront schema migration files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
