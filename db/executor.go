package db

import (
	"context"
)

// Executor runs a SQL text blob against the target database. Implementations
// report pass/fail only - there is no structured result.
type Executor interface {
	Exec(ctx context.Context, sql string) error
}
