package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the five entity tables. CREATE TABLE IF NOT EXISTS
// never alters an existing table, so a database file from an older version
// keeps its old shape.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		pat_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		phone TEXT NOT NULL,
		address TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		doc_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		specialty TEXT,
		dept_id INTEGER,
		phone TEXT,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		app_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pat_id INTEGER NOT NULL,
		doc_id INTEGER NOT NULL,
		app_date TEXT,
		app_time TEXT,
		status TEXT DEFAULT 'Scheduled'
	)`,
	`CREATE TABLE IF NOT EXISTS medical_records (
		record_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pat_id INTEGER NOT NULL,
		doc_id INTEGER NOT NULL,
		diagnosis TEXT NOT NULL,
		treatment TEXT,
		prescription TEXT,
		record_date TEXT DEFAULT (date('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS billings (
		bill_id INTEGER PRIMARY KEY AUTOINCREMENT,
		pat_id INTEGER NOT NULL,
		amount REAL,
		details TEXT,
		payment_status TEXT DEFAULT 'Pending'
	)`,
}

// EnsureSchema idempotently creates the entity tables. It is run on every
// process start; failure is fatal to startup.
func EnsureSchema(ctx context.Context, handle *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := handle.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w: %v", ErrUnavailable, err)
		}
	}
	return nil
}
