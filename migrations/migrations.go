// Package migrations embeds the SQL migrations for the user_profiles store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
