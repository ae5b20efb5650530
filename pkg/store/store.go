package store

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

const ConnectionStringVariable = "DATABASE_CONNECTION_STRING"

// Database keeps scraped catalogs in PostgreSQL
type Database struct {
	Pool *pgxpool.Pool
}

// Connect opens a pool on the given connection string, or on the one in DATABASE_CONNECTION_STRING when empty
func Connect(ctx context.Context, connectionString string) (*Database, error) {
	if connectionString == "" {
		connectionString = os.Getenv(ConnectionStringVariable)
	}
	if connectionString == "" {
		return nil, fmt.Errorf("no connection string given and %v is not set", ConnectionStringVariable)
	}

	pool, err := pgxpool.New(ctx, connectionString)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to database: %w", err)
	}
	return &Database{Pool: pool}, nil
}

func (d *Database) Close() {
	d.Pool.Close()
}
