// Package migrations embeds the SQL schema migrations so the migrate
// binary works without the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
