// Package migrations embeds the local content schema.
package migrations

import "embed"

// FS holds the content backend migrations.
//
//go:embed *.sql
var FS embed.FS
