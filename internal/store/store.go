package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store persists admins, job postings, and team members behind a bounded
// sqlx connection pool. It runs against MySQL in production, Postgres as an
// alternative, and in-memory SQLite for development and tests. Queries are
// written with ? placeholders and passed through Rebind so each driver binds
// parameters its own way; no request-supplied value is ever interpolated
// into SQL text.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database identified by driver ("mysql", "postgres",
// or "sqlite") and dsn, tunes the pool, and applies the schema migrations.
// Pass an empty dsn with the sqlite driver for an in-memory database.
func Open(driver, dsn string) (*Store, error) {
	name := driver
	switch driver {
	case "mysql":
		dsn = mysqlDSN(dsn)
	case "postgres":
		name = "pgx"
	case "sqlite":
		if dsn == "" {
			dsn = ":memory:"
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Driver returns the configured driver name.
func (s *Store) Driver() string {
	return s.driver
}

// mysqlDSN ensures the driver options the store depends on: parseTime so
// DATETIME/TIMESTAMP columns scan into time.Time, and clientFoundRows so
// UPDATE reports matched rows rather than changed rows. Without the latter,
// a full-row update that re-submits the current values would affect zero
// rows and be indistinguishable from a missing id.
func mysqlDSN(dsn string) string {
	for _, param := range []string{"parseTime=true", "clientFoundRows=true"} {
		key, _, _ := strings.Cut(param, "=")
		if strings.Contains(dsn, key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + param
		} else {
			dsn += "?" + param
		}
	}
	return dsn
}

// insert executes an INSERT written with ? placeholders and returns the
// generated id. Postgres has no LastInsertId, so the statement gains a
// RETURNING clause there.
func (s *Store) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if s.driver == "postgres" {
		var id int64
		q := s.db.Rebind(query + " RETURNING id")
		if err := s.db.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// exec runs a statement written with ? placeholders and returns ErrNotFound
// when no rows were affected. Zero affected rows must mean the WHERE clause
// matched nothing; on MySQL that contract holds because mysqlDSN forces
// clientFoundRows, so a matched-but-unchanged row still counts.
func (s *Store) exec(ctx context.Context, query string, args ...interface{}) error {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
