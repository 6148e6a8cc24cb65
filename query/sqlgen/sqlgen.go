// Package sqlgen builds parameterized SQL statements for the supported
// database dialects.
//
// All builders are pure: they produce statement text and an ordered bind
// list without touching a connection. Field and filter keys are sorted
// lexicographically so the generated SQL is deterministic regardless of
// map iteration order. Identifiers (table and column names) are
// interpolated verbatim; only values are parameterized.
package sqlgen

import (
	"fmt"
	"sort"
	"strings"
)

// Query represents a SQL statement with positional bind arguments.
type Query struct {
	SQL  string
	Args []interface{}
}

// Insert builds an INSERT statement from a field/value mapping. Column
// names appear in sorted order and bind values follow the same order.
func Insert(d Dialect, table string, fields map[string]interface{}) (*Query, error) {
	if len(fields) == 0 {
		return nil, &QueryError{fmt.Sprintf("insert into %s requires at least one field", table)}
	}

	columns := sortedKeys(fields)
	args := make([]interface{}, 0, len(columns))
	binds := make([]string, 0, len(columns))

	for i, name := range columns {
		binds = append(binds, d.Placeholder(i+1))
		args = append(args, fields[name])
	}

	return &Query{
		SQL:  fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(binds, ", ")),
		Args: args,
	}, nil
}

// Update builds an UPDATE statement keyed on the id column. Assignments
// appear in sorted field order; the primary key is always bound last.
func Update(d Dialect, table string, pk interface{}, fields map[string]interface{}) *Query {
	columns := sortedKeys(fields)
	args := make([]interface{}, 0, len(columns)+1)
	set := make([]string, 0, len(columns))

	for i, name := range columns {
		set = append(set, fmt.Sprintf("%s = %s", name, d.Placeholder(i+1)))
		args = append(args, fields[name])
	}
	args = append(args, pk)

	return &Query{
		SQL:  fmt.Sprintf("UPDATE %s SET %s WHERE id = %s", table, strings.Join(set, ", "), d.Placeholder(len(columns)+1)),
		Args: args,
	}
}

// Delete builds a DELETE statement keyed on the id column.
func Delete(d Dialect, table string, pk interface{}) *Query {
	return &Query{
		SQL:  fmt.Sprintf("DELETE FROM %s WHERE id = %s", table, d.Placeholder(1)),
		Args: []interface{}{pk},
	}
}

// Select builds a SELECT over the given column list. The WHERE clause is
// omitted entirely when the filter is empty.
func Select(d Dialect, table string, columns []string, filter map[string]interface{}) (*Query, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)

	if len(filter) == 0 {
		return &Query{SQL: sql}, nil
	}

	where, args, err := Where(d, filter, 1)
	if err != nil {
		return nil, err
	}

	return &Query{SQL: sql + " " + where, Args: args}, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
