// Package migrations embeds the SQL schema so the binaries carry it.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
