package main

import (
	"io/fs"
	"os"

	"bookcatalog/db"
)

// migrationSource returns the filesystem and directory goose reads from.
// MIGRATIONS_DIR points at an on-disk directory; otherwise the migrations
// embedded in the binary are used.
func migrationSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return db.Migrations, db.MigrationsDir
}
