// Package migrations embebe los scripts SQL del esquema para aplicarlos en el
// arranque con golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
