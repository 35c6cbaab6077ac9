package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrNoRows is returned by Get when the statement matched nothing.
var ErrNoRows = errors.New("repos: no rows in result set")

// StorageError wraps any failure reported by the driver or the pool.
type StorageError struct {
	Op  string
	Err error
}

// Error returns the driver's own message so callers can surface it as-is.
func (e *StorageError) Error() string {
	var me *mysql.MySQLError
	if errors.As(e.Err, &me) {
		return me.Message
	}
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Result is what a write statement reports back.
type Result struct {
	Affected     int64
	LastInsertID int64
}

// DB is the pooled connection every repository executes through.
// One call is one statement; nothing is retried.
type DB struct {
	x *sqlx.DB
}

// NewDB wraps an already opened sqlx handle.
func NewDB(x *sqlx.DB) *DB { return &DB{x: x} }

// Select runs a query and scans every row into dest (a pointer to a slice).
func (d *DB) Select(ctx context.Context, dest any, query string, args ...any) error {
	if err := d.x.SelectContext(ctx, dest, query, args...); err != nil {
		return &StorageError{Op: "select", Err: err}
	}
	return nil
}

// Get runs a query expected to return one row. An empty result is ErrNoRows,
// not a StorageError.
func (d *DB) Get(ctx context.Context, dest any, query string, args ...any) error {
	err := d.x.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoRows
	}
	if err != nil {
		return &StorageError{Op: "get", Err: err}
	}
	return nil
}

// Exec runs a write statement.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := d.x.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, &StorageError{Op: "exec", Err: err}
	}
	var out Result
	if out.Affected, err = res.RowsAffected(); err != nil {
		return Result{}, &StorageError{Op: "exec", Err: err}
	}
	// Not every driver/statement reports an insert id; zero is fine.
	out.LastInsertID, _ = res.LastInsertId()
	return out, nil
}

func (d *DB) Ping(ctx context.Context) error {
	if err := d.x.PingContext(ctx); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

// Close releases the pool. Calls made afterwards fail with a StorageError.
func (d *DB) Close() error { return d.x.Close() }

// Sqlx exposes the underlying handle for bootstrap code and tests.
func (d *DB) Sqlx() *sqlx.DB { return d.x }
