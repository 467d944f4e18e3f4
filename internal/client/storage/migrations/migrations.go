// Package migrations embeds the goose migration scripts for the client's
// local sqlite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
