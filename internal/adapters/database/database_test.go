package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter opens a throwaway SQLite database with a small table.
func newTestAdapter(t *testing.T) *SQLiteAdapter {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	adapter, err := NewSQLiteAdapter(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close(false) })

	_, err = adapter.Exec(context.Background(), "CREATE TABLE people (id INTEGER NOT NULL, name VARCHAR(128), age INTEGER)", nil, true)
	require.NoError(t, err)
	return adapter
}

func TestOpenRejectsUnknownDSN(t *testing.T) {
	for _, dsn := range []string{"foo", "foo://bar", ""} {
		t.Run(dsn, func(t *testing.T) {
			adapter, err := Open(context.Background(), dsn)
			assert.Nil(t, adapter)

			var dsnErr *InvalidDSNError
			require.ErrorAs(t, err, &dsnErr)
			assert.Empty(t, dsnErr.Adapter)
		})
	}
}

func TestOpenRejectsMalformedDaemonDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		adapter string
	}{
		{"postgres://localhost/test", "postgres"},
		{"mysql://localhost/test", "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			adapter, err := Open(context.Background(), tt.dsn)
			assert.Nil(t, adapter)

			var dsnErr *InvalidDSNError
			require.ErrorAs(t, err, &dsnErr)
			assert.Equal(t, tt.adapter, dsnErr.Adapter)
		})
	}
}

func TestOpenSQLite(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	adapter, err := Open(context.Background(), dsn)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", adapter.Dialect().Name())
	assert.NoError(t, adapter.Close(true))
}

func TestExecInsertAndSelect(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	res, err := adapter.Exec(ctx, "INSERT INTO people (id, name) VALUES (?, ?)", []interface{}{1, "Daniel"}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)

	res, err = adapter.Exec(ctx, "SELECT id, name, age FROM people", nil, false)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), res.Affected)
	assert.Equal(t, []string{"id", "name", "age"}, res.Columns)
	require.Len(t, res.Rows, 1)

	// Text arrives as string, NULL as nil.
	assert.Equal(t, []interface{}{int64(1), "Daniel", nil}, res.Rows[0])
}

func TestExecAffectedCount(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := adapter.Exec(ctx, "INSERT INTO people (id, name) VALUES (?, ?)", []interface{}{i, "row"}, true)
		require.NoError(t, err)
	}

	res, err := adapter.Exec(ctx, "DELETE FROM people", nil, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Affected)
}

func TestExecRollsBackOnError(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.Exec(ctx, "INSERT INTO people (id, name) VALUES (?, ?)", []interface{}{1, "Daniel"}, false)
	require.NoError(t, err)

	_, err = adapter.Exec(ctx, "TOTALLY NOT SQL", nil, false)
	require.Error(t, err)

	// The failed statement discarded the whole pending transaction,
	// including the uncommitted insert.
	res, err := adapter.Exec(ctx, "SELECT id FROM people", nil, false)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestClosePersistsCommittedWork(t *testing.T) {
	dir := t.TempDir()
	dsn := "sqlite://" + filepath.Join(dir, "test.db")
	ctx := context.Background()

	first, err := NewSQLiteAdapter(ctx, dsn)
	require.NoError(t, err)
	_, err = first.Exec(ctx, "CREATE TABLE people (id INTEGER, name VARCHAR(128))", nil, true)
	require.NoError(t, err)
	_, err = first.Exec(ctx, "INSERT INTO people (id, name) VALUES (?, ?)", []interface{}{1, "Toasty"}, false)
	require.NoError(t, err)
	require.NoError(t, first.Close(true))

	second, err := NewSQLiteAdapter(ctx, dsn)
	require.NoError(t, err)
	defer second.Close(false)

	res, err := second.Exec(ctx, "SELECT name FROM people", nil, false)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Toasty", res.Rows[0][0])
}

func TestCloseDiscardsUncommittedWork(t *testing.T) {
	dir := t.TempDir()
	dsn := "sqlite://" + filepath.Join(dir, "test.db")
	ctx := context.Background()

	first, err := NewSQLiteAdapter(ctx, dsn)
	require.NoError(t, err)
	_, err = first.Exec(ctx, "CREATE TABLE people (id INTEGER, name VARCHAR(128))", nil, true)
	require.NoError(t, err)
	_, err = first.Exec(ctx, "INSERT INTO people (id, name) VALUES (?, ?)", []interface{}{1, "Toasty"}, false)
	require.NoError(t, err)
	require.NoError(t, first.Close(false))

	second, err := NewSQLiteAdapter(ctx, dsn)
	require.NoError(t, err)
	defer second.Close(false)

	res, err := second.Exec(ctx, "SELECT name FROM people", nil, false)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestClosedAdapterRejectsOperations(t *testing.T) {
	adapter := newTestAdapter(t)
	require.NoError(t, adapter.Close(true))

	_, err := adapter.Exec(context.Background(), "SELECT 1", nil, false)
	assert.True(t, errors.Is(err, ErrClosed))

	_, err = adapter.Columns(context.Background(), "people")
	assert.True(t, errors.Is(err, ErrClosed))

	assert.True(t, errors.Is(adapter.Close(true), ErrClosed))
}

func TestCachedIntrospectsOnce(t *testing.T) {
	c := conn{tables: make(map[string][]string)}
	calls := 0
	introspect := func(context.Context, string) ([]string, error) {
		calls++
		return []string{"age", "id", "name"}, nil
	}

	for i := 0; i < 2; i++ {
		columns, err := c.cached(context.Background(), "people", introspect)
		require.NoError(t, err)
		assert.Equal(t, []string{"age", "id", "name"}, columns)
	}
	assert.Equal(t, 1, calls)
}

func TestCachedSkipsFailedIntrospection(t *testing.T) {
	c := conn{tables: make(map[string][]string)}
	calls := 0
	introspect := func(context.Context, string) ([]string, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("no such table")
		}
		return []string{"id"}, nil
	}

	_, err := c.cached(context.Background(), "people", introspect)
	require.Error(t, err)

	columns, err := c.cached(context.Background(), "people", introspect)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, columns)
	assert.Equal(t, 2, calls)
}

func TestSQLiteColumns(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	columns, err := adapter.Columns(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "id", "name"}, columns)

	// The registry never invalidates: schema changes after the first
	// introspection are not visible through the same adapter.
	_, err = adapter.Exec(ctx, "ALTER TABLE people ADD COLUMN email VARCHAR(128)", nil, true)
	require.NoError(t, err)

	columns, err = adapter.Columns(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "id", "name"}, columns)
}

func TestSQLiteColumnsMissingTable(t *testing.T) {
	adapter := newTestAdapter(t)

	_, err := adapter.Columns(context.Background(), "nonexistent")
	require.Error(t, err)
}
