package sqlgen

// QueryError reports malformed CRUD input: an unsupported filter lookup,
// an empty insert field set, or a table whose introspection yields no
// columns. The call can be fixed and retried by the caller.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return e.Message }
