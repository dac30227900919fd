package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/lawflow/lawflow-backend/repositories"
)

type Executor struct {
	mock.Mock
}

func (e *Executor) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := e.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (e *Executor) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := e.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Rows), args.Error(1)
}

func (e *Executor) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := e.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

type ExecutorFactory struct {
	mock.Mock
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	args := f.Called()
	return args.Get(0).(repositories.Executor)
}
