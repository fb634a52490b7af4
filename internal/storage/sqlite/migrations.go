package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    payload BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema migrations.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
