package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/satishbabariya/morsel/query/sqlgen"
)

// SQLiteAdapter serves file-based SQLite databases.
type SQLiteAdapter struct {
	conn
}

// NewSQLiteAdapter opens the database file named by a DSN such as
// "sqlite:///home/user/app.db".
func NewSQLiteAdapter(ctx context.Context, dsn string) (*SQLiteAdapter, error) {
	path, ok := parseFilesystemDSN(dsn)
	if !ok {
		return nil, &InvalidDSNError{DSN: dsn, Adapter: "sqlite"}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteAdapter{conn: newConn(db, sqlgen.SQLite{})}, nil
}

// Columns introspects a table by selecting from it and reading the
// result set's column metadata. SQLite reports metadata even for empty
// tables, so no row needs to exist; a missing table surfaces as the
// driver's error.
func (a *SQLiteAdapter) Columns(ctx context.Context, table string) ([]string, error) {
	return a.cached(ctx, table, func(ctx context.Context, table string) ([]string, error) {
		res, err := a.Exec(ctx, "SELECT * FROM "+table, nil, true)
		if err != nil {
			return nil, err
		}

		columns := append([]string(nil), res.Columns...)
		sort.Strings(columns)
		return columns, nil
	})
}

// Ensure SQLiteAdapter implements the Adapter interface.
var _ Adapter = (*SQLiteAdapter)(nil)
