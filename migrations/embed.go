// Package migrations embeds the goose SQL migrations.
package migrations

import "embed"

// FS contains the schema migrations, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
