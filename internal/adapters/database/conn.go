package database

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/satishbabariya/morsel/internal/debug"
	"github.com/satishbabariya/morsel/query/sqlgen"
)

// conn is the execution core shared by all adapters: one pooled
// connection, a lazily started transaction that statements join until
// the caller commits, and the per-table column cache.
//
// A conn is not safe for concurrent use; like the transaction it
// wraps, it expects one caller at a time.
type conn struct {
	db      *sql.DB
	dialect sqlgen.Dialect
	tx      *sql.Tx
	closed  bool

	mu     sync.RWMutex
	tables map[string][]string
}

// newConn pins the pool to a single connection so the lazy transaction
// and all uncommitted state stay on one backend session.
func newConn(db *sql.DB, dialect sqlgen.Dialect) conn {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return conn{
		db:      db,
		dialect: dialect,
		tables:  make(map[string][]string),
	}
}

// Dialect returns the SQL dialect of the underlying backend.
func (c *conn) Dialect() sqlgen.Dialect {
	return c.dialect
}

// Exec implements the Adapter execution contract on the shared
// connection.
func (c *conn) Exec(ctx context.Context, query string, args []interface{}, commit bool) (*Result, error) {
	if c.closed {
		return nil, ErrClosed
	}

	tx, err := c.pending(ctx)
	if err != nil {
		return nil, err
	}

	debug.Debug("executing statement", "query", query, "args", len(args), "commit", commit)

	var result *Result
	if returnsRows(query) {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err == nil {
			result, err = collectRows(rows)
		}
		if err != nil {
			c.rollback()
			return nil, err
		}
	} else {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			c.rollback()
			return nil, err
		}
		result = &Result{Affected: affectedCount(res)}
	}

	if commit {
		if err := c.commit(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Close releases the connection after committing or rolling back
// pending work.
func (c *conn) Close(commit bool) error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true

	var err error
	if commit {
		err = c.commit()
	} else {
		c.rollback()
	}

	if cerr := c.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// pending returns the transaction in progress, starting one if needed.
func (c *conn) pending(ctx context.Context) (*sql.Tx, error) {
	if c.tx != nil {
		return c.tx, nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	c.tx = tx
	return tx, nil
}

// commit finishes the pending transaction. With nothing pending it is
// a no-op.
func (c *conn) commit() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit()
	c.tx = nil
	return err
}

// rollback discards the pending transaction, if any.
func (c *conn) rollback() {
	if c.tx == nil {
		return
	}
	if err := c.tx.Rollback(); err != nil {
		debug.Debug("rollback failed", "error", err)
	}
	c.tx = nil
}

// cached serves table's column list from the registry, filling it with
// introspect on first use. Only successful introspections are cached.
func (c *conn) cached(ctx context.Context, table string, introspect func(context.Context, string) ([]string, error)) ([]string, error) {
	c.mu.RLock()
	columns, ok := c.tables[table]
	c.mu.RUnlock()
	if ok {
		return columns, nil
	}

	columns, err := introspect(ctx, table)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables[table] = columns
	c.mu.Unlock()
	return columns, nil
}

// returnsRows reports whether a statement produces a result set rather
// than an affected-row count.
func returnsRows(query string) bool {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToUpper(fields[0]) {
	case "SELECT", "PRAGMA", "SHOW", "DESC", "DESCRIBE", "EXPLAIN", "WITH", "VALUES":
		return true
	}
	return false
}

// collectRows drains a result set into a Result, normalizing []byte
// values to string and keeping NULL as nil.
func collectRows(rows *sql.Rows) (*Result, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: columns, Affected: -1}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		for i, value := range values {
			if b, ok := value.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// affectedCount reads the affected-row count, degrading to -1 when the
// driver cannot report one.
func affectedCount(res sql.Result) int64 {
	count, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return count
}
