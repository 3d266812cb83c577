package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// MemoryDSN is the DSN of a private in-memory database.
const MemoryDSN = ":memory:"

type database struct {
	db *sql.DB
}

// Connect opens the SQLite file at dsn, creating it if needed. An
// in-memory DSN is pinned to one connection so every query sees the same
// database.
func Connect(ctx context.Context, dsn string) (*database, error) {
	db, err := sql.Open("sqlite", withBusyTimeout(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}

	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	return &database{db: db}, nil
}

var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// ExistingOnly rewrites dsn as a URI that opens the file read-write but
// fails instead of creating it when it is missing. Query parameters on
// dsn are kept. In-memory and file: DSNs are returned unchanged.
func ExistingOnly(dsn string) string {
	if dsn == MemoryDSN || strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	path, query, _ := strings.Cut(dsn, "?")
	uri := "file:" + uriPathEscaper.Replace(path) + "?mode=rw"
	if query != "" {
		uri += "&" + query
	}
	return uri
}

// withBusyTimeout makes readers wait for a writer instead of failing
// with SQLITE_BUSY while the application holds the file.
func withBusyTimeout(dsn string) string {
	if dsn == MemoryDSN || strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}

func (d *database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}

// Version returns sqlite_version() of the embedded engine.
func (d *database) Version(ctx context.Context) (string, error) {
	var version string
	row := d.db.QueryRowContext(ctx, `SELECT sqlite_version()`)
	if err := row.Scan(&version); err != nil {
		return "", fmt.Errorf("query sqlite version: %w", err)
	}
	return version, nil
}

func (d *database) Close() error {
	return d.db.Close()
}
