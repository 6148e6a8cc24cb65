package morsel

import (
	"github.com/satishbabariya/morsel/internal/adapters/database"
	"github.com/satishbabariya/morsel/query/sqlgen"
)

// QueryError reports malformed CRUD input, such as an unsupported
// filter lookup or an insert without fields.
type QueryError = sqlgen.QueryError

// InvalidDSNError reports a connection string no backend recognizes.
type InvalidDSNError = database.InvalidDSNError

// Result is the outcome of a Raw statement: either a result set, or an
// affected-row count with Affected >= 0.
type Result = database.Result

// ErrClosed is returned for any operation on a DB whose Close has
// already run.
var ErrClosed = database.ErrClosed
