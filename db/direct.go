package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Direct executes SQL over a direct Postgres connection. It sends the same
// multi-statement text as the management API executor, in a single Exec and
// without a wrapping transaction, so the two executors fail the same way: an
// INSERT error leaves the table dropped and recreated but empty.
type Direct struct {
	DSN string
}

func (d *Direct) Exec(ctx context.Context, sql string) error {
	conn, err := pgx.Connect(ctx, d.DSN)
	if err != nil {
		return err
	}

	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, sql); err != nil {
		return err
	}

	return nil
}
