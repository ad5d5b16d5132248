package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Querier is the subset of pgxpool.Pool the repositories use.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Executor forwards statements to the pool and logs each one at debug level.
// Errors are returned exactly as the driver produced them.
type Executor struct {
	q   Querier
	log zerolog.Logger
}

// NewExecutor wraps q. Pass a *pgxpool.Pool in production.
func NewExecutor(q Querier, log zerolog.Logger) *Executor {
	return &Executor{
		q:   q,
		log: log.With().Str("component", "executor").Logger(),
	}
}

func (e *Executor) trace(sql string, args []any) {
	e.log.Debug().Str("sql", sql).Interface("args", args).Msg("Executing query")
}

// Exec runs a statement that returns no rows.
func (e *Executor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.trace(sql, args)
	return e.q.Exec(ctx, sql, args...)
}

// Query runs a statement that returns rows.
func (e *Executor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	e.trace(sql, args)
	return e.q.Query(ctx, sql, args...)
}

// QueryRow runs a statement that returns at most one row.
func (e *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	e.trace(sql, args)
	return e.q.QueryRow(ctx, sql, args...)
}
