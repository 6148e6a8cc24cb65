package database

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for any operation on an adapter whose Close
// has already run.
var ErrClosed = errors.New("database: connection is closed")

// InvalidDSNError reports a connection string that no adapter
// recognizes, or that does not satisfy its adapter's syntax.
type InvalidDSNError struct {
	DSN string

	// Adapter names the backend that rejected the DSN. It is empty
	// when no registered prefix matched at all.
	Adapter string
}

func (e *InvalidDSNError) Error() string {
	if e.Adapter != "" {
		return fmt.Sprintf("%q is not a valid %s DSN", e.DSN, e.Adapter)
	}
	return fmt.Sprintf("%q is not a recognizable DSN", e.DSN)
}
