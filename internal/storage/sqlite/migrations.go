package sqlite

import "database/sql"

// schema sets up the slot table. Each row holds one collection as a JSON array.
// It runs on startup to ensure the table exists.
const schema = `
CREATE TABLE IF NOT EXISTS slots (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
