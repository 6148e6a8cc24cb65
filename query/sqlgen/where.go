package sqlgen

import (
	"fmt"
	"reflect"
	"strings"
)

// Separator splits a filter key into column name and lookup operator.
const Separator = "__"

// compareOps maps range lookups to their SQL comparison operators.
var compareOps = map[string]string{
	"lt":  "<",
	"lte": "<=",
	"gt":  ">",
	"gte": ">=",
}

// Where compiles a filter expression into a WHERE clause and its bind
// values. Keys are sorted lexicographically and the resulting clauses are
// joined with AND. argIndex is the 1-based index of the first placeholder,
// letting callers place the clause after earlier bind values.
//
// A bare key compiles to an exact match. A key of the form
// column__operator applies the named lookup: lt, lte, gt and gte compare;
// startswith, endswith and contains become LIKE patterns with the `%`
// wildcard appended, prepended, or both; in expands to one placeholder per
// element of its slice value. An unrecognized operator falls back to an
// exact match on the column. More than one separator in a key is an error.
//
// An empty filter compiles to an empty clause; callers must omit WHERE
// from the statement in that case.
func Where(d Dialect, filter map[string]interface{}, argIndex int) (string, []interface{}, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	var clauses []string
	var args []interface{}

	for _, key := range sortedKeys(filter) {
		value := filter[key]
		parts := strings.Split(key, Separator)

		if len(parts) > 2 {
			return "", nil, &QueryError{fmt.Sprintf("%q is not a supported lookup: only one %q separator is allowed", key, Separator)}
		}

		if len(parts) == 1 {
			clauses = append(clauses, fmt.Sprintf("%s = %s", key, d.Placeholder(argIndex)))
			args = append(args, value)
			argIndex++
			continue
		}

		column, op := parts[0], parts[1]

		switch op {
		case "in":
			rv := reflect.ValueOf(value)
			if value == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
				return "", nil, &QueryError{fmt.Sprintf("%q requires a slice or array value, got %T", key, value)}
			}
			binds := make([]string, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				binds[i] = d.Placeholder(argIndex)
				args = append(args, rv.Index(i).Interface())
				argIndex++
			}
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", column, strings.Join(binds, ", ")))

		case "lt", "lte", "gt", "gte":
			clauses = append(clauses, fmt.Sprintf("%s %s %s", column, compareOps[op], d.Placeholder(argIndex)))
			args = append(args, value)
			argIndex++

		case "startswith", "endswith", "contains":
			pattern := fmt.Sprintf("%v", value)
			if op == "startswith" || op == "contains" {
				pattern = pattern + "%"
			}
			if op == "endswith" || op == "contains" {
				pattern = "%" + pattern
			}
			clauses = append(clauses, fmt.Sprintf("%s LIKE %s%s", column, d.Placeholder(argIndex), d.LikeSuffix()))
			args = append(args, pattern)
			argIndex++

		default:
			// Unknown operators deliberately degrade to an exact match on
			// the column instead of failing.
			clauses = append(clauses, fmt.Sprintf("%s = %s", column, d.Placeholder(argIndex)))
			args = append(args, value)
			argIndex++
		}
	}

	return "WHERE " + strings.Join(clauses, " AND "), args, nil
}
