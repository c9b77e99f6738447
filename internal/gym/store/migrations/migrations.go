// Package migrations embeds the schema shared by the sqlite and postgres
// drivers. Statements stick to the SQL both engines accept.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
