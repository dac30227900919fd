package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Executor is the query surface shared by pgxpool.Pool, pgx transactions and
// pgxmock pools. Repositories never hold a pool directly.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ExecutorGetter hands out executors backed by the application connection
// pool. Usecases depend on the interface so tests can substitute a pgxmock
// backed stub.
type ExecutorGetter struct {
	pool Executor
}

func NewExecutorGetter(pool Executor) ExecutorGetter {
	return ExecutorGetter{pool: pool}
}

func (g ExecutorGetter) NewExecutor() Executor {
	return g.pool
}
