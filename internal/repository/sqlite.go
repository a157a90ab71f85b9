package repository

import (
	"context"
	"database/sql"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"github.com/kelechimadu/invoice-tally/gen/ent"
)

// OpenSQLite opens an embedded SQLite database and creates the schema.
// Used by the local CLI and by repository tests; the server uses Postgres.
func OpenSQLite(ctx context.Context, dsn string) (*ent.Client, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// foreign_keys is off by default in SQLite
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
