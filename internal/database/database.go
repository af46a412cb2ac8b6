// Package database centralises sqlx connection helpers.  Three drivers are
// registered:
//
//	mysql   go-sql-driver/mysql (also MariaDB)
//	pgx     jackc/pgx/v5/stdlib (Postgres)
//	sqlite  modernc.org/sqlite  (embedded, pure Go; local runs and tests)
//
// Public entry points:
//
//	Open(driver, dsn)                     – quick helper with conservative pool sizes.
//	OpenWithOptions(ctx, driver, dsn, o)  – fine-grained control.
//	Migrate(ctx, db, stmts)               – run idempotent DDL in one transaction.
//
// SQLite's built-in lower() folds ASCII only; init replaces it with a
// Unicode-aware version so LOWER(x) LIKE LOWER(?) behaves the same on all
// three drivers (the ICU extension does the same).
//
// Both open helpers Ping the database before returning so callers can fail
// fast during bootstrap.  Callers should Close() the returned *sqlx.DB when
// no longer needed.
package database

import (
	"bytes"
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction("lower", 1, unicodeLower); err != nil {
		panic(fmt.Sprintf("database: register sqlite lower: %v", err))
	}
}

// unicodeLower mirrors SQLite's lower(): NULL stays NULL, everything else
// comes back as lower-cased text.
func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return string(bytes.ToLower(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultOptions: 15 max open, 5 idle, and a 30-minute connection lifetime.
var DefaultOptions = Options{
	MaxOpenConns:    15,
	MaxIdleConns:    5,
	ConnMaxLifetime: 30 * time.Minute,
}

// Open returns a *sqlx.DB with DefaultOptions.
func Open(driver, dsn string) (*sqlx.DB, error) {
	return OpenWithOptions(context.Background(), driver, dsn, DefaultOptions)
}

// OpenWithOptions opens and pings a pool.  SQLite pools are pinned to one
// connection: SQLite allows a single writer, and every connection to
// ":memory:" would otherwise see its own empty database.
func OpenWithOptions(ctx context.Context, driver, dsn string, o Options) (*sqlx.DB, error) {
	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		o.MaxOpenConns, o.MaxIdleConns = 1, 1
		o.ConnMaxLifetime = 0
	}
	db.SetMaxOpenConns(o.MaxOpenConns)
	db.SetMaxIdleConns(o.MaxIdleConns)
	db.SetConnMaxLifetime(o.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate executes stmts in order inside one transaction.  Statements are
// expected to be idempotent (CREATE … IF NOT EXISTS).
func Migrate(ctx context.Context, db *sqlx.DB, stmts []string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migrate: begin: %w", err)
	}
	for i, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migrate: statement %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}
