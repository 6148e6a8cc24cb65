// Package morsel is a tiny, schema-agnostic CRUD layer over SQLite,
// PostgreSQL and MySQL.
//
// A DB is opened from a DSN and speaks plain maps instead of schemas:
//
//	db, err := morsel.Open(ctx, "sqlite:///home/user/app.db")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close(true)
//
//	db.Add(ctx, "people", morsel.Fields{"id": 1, "name": "Daniel"})
//	rows, err := db.Find(ctx, "people", morsel.Filter{"age__lt": 30})
//
// Filter keys use double-underscore lookups (age__lt, name__startswith,
// id__in, ...) that compile to parameterized SQL. Column lists are
// introspected from the backend on first use and cached for the
// lifetime of the DB.
//
// Statements run inside an implicit transaction on a single
// connection: writes commit immediately, reads join the pending
// transaction, and Close either commits or discards whatever is still
// open.
package morsel
