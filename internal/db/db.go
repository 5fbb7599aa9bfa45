package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// connPragmas are applied by the driver to every pooled connection, so
// each one waits on a locked database instead of failing with SQLITE_BUSY.
var connPragmas = []string{
	"busy_timeout(5000)",
	"foreign_keys(1)",
	"journal_mode(WAL)",
}

// dsn builds the driver connection string for path. Write transactions
// take the lock up front so two writers never deadlock on an upgrade.
func dsn(path string) string {
	params := url.Values{}
	for _, p := range connPragmas {
		params.Add("_pragma", p)
	}
	params.Set("_txlock", "immediate")
	return path + "?" + params.Encode()
}

// OpenDB opens the session database at path, creating its directory when
// needed. ":memory:" opens an in-memory database. WAL mode, foreign keys and
// a busy timeout are set on every connection and migrations are applied
// before returning.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// An in-memory database lives on a single connection; a second pooled
	// connection would see an empty schema.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
