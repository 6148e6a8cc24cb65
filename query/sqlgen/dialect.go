package sqlgen

import "fmt"

// Dialect supplies the per-backend pieces of generated SQL: the bind
// placeholder token and the LIKE predicate suffix.
type Dialect interface {
	// Name returns the dialect identifier. It matches the DSN scheme.
	Name() string

	// Placeholder returns the bind placeholder for the i-th value of a
	// statement (1-based). Dialects with purely positional binding ignore i.
	Placeholder(i int) string

	// LikeSuffix returns text appended to every LIKE predicate, or "".
	LikeSuffix() string
}

// SQLite binds with `?` and declares an escape character on LIKE so
// callers can match literal `%` and `_` by escaping them in the pattern.
type SQLite struct{}

func (SQLite) Name() string             { return "sqlite" }
func (SQLite) Placeholder(i int) string { return "?" }
func (SQLite) LikeSuffix() string       { return ` ESCAPE '\'` }

// Postgres binds with numbered `$N` placeholders.
type Postgres struct{}

func (Postgres) Name() string             { return "postgres" }
func (Postgres) Placeholder(i int) string { return fmt.Sprintf("$%d", i) }
func (Postgres) LikeSuffix() string       { return "" }

// MySQL binds with `?`.
type MySQL struct{}

func (MySQL) Name() string             { return "mysql" }
func (MySQL) Placeholder(i int) string { return "?" }
func (MySQL) LikeSuffix() string       { return "" }

var (
	_ Dialect = SQLite{}
	_ Dialect = Postgres{}
	_ Dialect = MySQL{}
)
