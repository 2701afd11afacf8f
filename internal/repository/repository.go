// Package repository handles all interactions with the database.
//
// Every operation builds one parameterized statement, sends it to the
// injected Querier in a single round trip and maps the rows back into
// model records. Single-row lookups report a missing row as ErrNotFound;
// list lookups return an empty slice. Any other failure is returned to the
// caller unchanged apart from wrapping.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ErrNotFound is matched by every not-found error a repository returns.
var ErrNotFound = pgx.ErrNoRows

// IsNotFound reports whether err means the looked-up row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Querier executes parameterized statements. *pgxpool.Pool, *pgx.Conn and
// pgx.Tx all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// redacted replaces credential arguments in traces.
const redacted = "[REDACTED]"

// base carries what every repository needs: the executor and a logger.
type base struct {
	db  Querier
	log *zerolog.Logger
}

func (b base) trace(op, sql string, args []any) {
	b.log.Debug().
		Str("operation", op).
		Str("sql", sql).
		Interface("args", args).
		Msg("executing statement")
}

// query logs the statement and its arguments, then runs it.
func (b base) query(ctx context.Context, op, sql string, args ...any) (pgx.Rows, error) {
	b.trace(op, sql, args)
	return b.db.Query(ctx, sql, args...)
}

// queryRow is query for statements that yield exactly one row.
func (b base) queryRow(ctx context.Context, op, sql string, args ...any) pgx.Row {
	b.trace(op, sql, args)
	return b.db.QueryRow(ctx, sql, args...)
}
