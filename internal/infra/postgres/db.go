// Package postgres implements the unit of work and repositories on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"log/slog"

	"daycare-waitlist/internal/infra"
	"daycare-waitlist/internal/pkg/config"
	"daycare-waitlist/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
	pgErrCodeReadOnlyTransaction = "25006"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "ping database")
	}
	return pool, nil
}

// mapErr classifies a driver error. Constraint violations are expected outcomes and are not logged.
func mapErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.NewRepoErr(infra.KindDuplicateKey, msg+": "+pgErr.ConstraintName)
		case pgErrCodeForeignKeyViolation:
			return infra.NewRepoErr(infra.KindForeignKeyViolated, msg+": "+pgErr.ConstraintName)
		case pgErrCodeCheckViolation:
			return infra.NewRepoErr(infra.KindConflict, msg+": "+pgErr.ConstraintName)
		case pgErrCodeReadOnlyTransaction:
			return infra.NewRepoErr(infra.KindReadOnly, msg)
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
			// left intact so the unit of work can retry
			return err
		}
	}
	return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, msg, err)
}
