package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens (creating if necessary) the single-file SQLite database and
// returns a long-lived handle. The handle is shared by every module for the
// life of the process; database/sql scopes connection acquisition per
// statement, so there is no per-operation open/close.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// SQLite allows one writer at a time; a single pooled connection keeps
	// write statements from tripping over each other under WAL.
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	return handle, nil
}
