package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

// ErrNoRow is returned by FetchOne when the statement produced no row. It is
// a normal outcome, unlike errors wrapping utils.ErrStorage.
var ErrNoRow = errors.New("no row")

// Scanner is the subset of *sql.Rows handed to FetchAll callbacks.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc is called once per row, in result order.
type ScanFunc func(row Scanner) error

// Result describes a committed statement. InsertedID is set when the
// statement returned a generated key; RowsAffected otherwise.
type Result struct {
	InsertedID   int64
	RowsAffected int64
}

// Executor runs one parameterized statement per call on its own connection.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) error
	FetchAll(ctx context.Context, scan ScanFunc, query string, args ...any) error
	FetchOne(ctx context.Context, dest []any, query string, args ...any) error
	Commit(ctx context.Context, query string, args ...any) (Result, error)
}

type executor struct {
	db  *sql.DB
	log *zap.Logger
}

func NewExecutor(db *sql.DB, log *zap.Logger) Executor {
	return &executor{
		db:  db,
		log: log.With(zap.String("component", "executor")),
	}
}

func (e *executor) Exec(ctx context.Context, query string, args ...any) error {
	conn, err := e.acquire(ctx, query)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return e.fail("exec", query, args, err)
	}
	return nil
}

func (e *executor) FetchAll(ctx context.Context, scan ScanFunc, query string, args ...any) error {
	conn, err := e.acquire(ctx, query)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return e.fail("fetch all", query, args, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return e.fail("scan row", query, args, err)
		}
	}
	if err := rows.Err(); err != nil {
		return e.fail("iterate rows", query, args, err)
	}

	return nil
}

func (e *executor) FetchOne(ctx context.Context, dest []any, query string, args ...any) error {
	conn, err := e.acquire(ctx, query)
	if err != nil {
		return err
	}
	defer conn.Close()

	err = conn.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRow
	}
	if err != nil {
		return e.fail("fetch one", query, args, err)
	}
	return nil
}

// Commit runs the statement in a transaction. Statements with a RETURNING
// clause must return a single integer key.
func (e *executor) Commit(ctx context.Context, query string, args ...any) (Result, error) {
	conn, err := e.acquire(ctx, query)
	if err != nil {
		return Result{}, err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, e.fail("begin", query, args, err)
	}

	var res Result
	if returnsKey(query) {
		err = tx.QueryRowContext(ctx, query, args...).Scan(&res.InsertedID)
	} else {
		var r sql.Result
		r, err = tx.ExecContext(ctx, query, args...)
		if err == nil {
			res.RowsAffected, err = r.RowsAffected()
		}
	}

	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			e.log.Error("Rollback failed", zap.Error(rbErr))
		}
		return Result{}, e.fail("commit", query, args, err)
	}

	if err := tx.Commit(); err != nil {
		return Result{}, e.fail("commit", query, args, err)
	}

	return res, nil
}

func (e *executor) acquire(ctx context.Context, query string) (*sql.Conn, error) {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		e.log.Error("Database connection could not be established",
			zap.Error(err),
			zap.String("query", compact(query)),
		)
		return nil, fmt.Errorf("%w: connect: %w", utils.ErrStorage, err)
	}
	return conn, nil
}

func (e *executor) fail(op, query string, args []any, err error) error {
	e.log.Error("Database query error",
		zap.String("op", op),
		zap.Error(err),
		zap.String("query", compact(query)),
		zap.Int("params", len(args)),
	)
	return fmt.Errorf("%w: %s: %w", utils.ErrStorage, op, err)
}

func returnsKey(query string) bool {
	return strings.Contains(strings.ToUpper(query), "RETURNING")
}

func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
