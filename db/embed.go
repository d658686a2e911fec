// Package db embeds the SQL migrations so production builds can run them
// without the db/migrations directory on disk. Enable with the
// embed_migrations build tag.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
