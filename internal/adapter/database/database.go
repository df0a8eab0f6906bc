package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/riftbikes/rift_storefront/internal/core/domain"
	"github.com/riftbikes/rift_storefront/internal/core/ports"

	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// goose keeps its dialect, logger and base FS in package globals.
var migrateMu sync.Mutex

// Store is the single shared handle to the storefront database.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database, checks it is reachable and applies the
// schema. Applying the schema to an up-to-date database is a no-op.
func Open(ctx context.Context, driver, dsn string, logger ports.LoggerPort) (*Store, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, unavailable("open "+driver, err)
	}
	if driver == DriverSQLite {
		// one writer; the file is the whole database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, unavailable("ping "+driver, err)
	}

	if err := migrate(db, driver, dialect, logger); err != nil {
		db.Close()
		return nil, unavailable("migrate "+driver, err)
	}

	logger.Info("Database ready", map[string]interface{}{
		"driver": driver,
	})

	return &Store{db: db, driver: driver}, nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", nil
	case DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("%w: unsupported database driver %q", domain.ErrValidation, driver)
	}
}

func migrate(db *sql.DB, driver, dialect string, logger ports.LoggerPort) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{logger: logger})
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.Up(db, "migrations/"+driver)
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// GetOne runs a single-row query. Scan errors are left to the caller so that
// sql.ErrNoRows can be told apart from a broken connection.
func (s *Store) GetOne(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(query), args...)
}

func (s *Store) GetAll(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, unavailable("query", err)
	}
	return rows, nil
}

// RunReturningID executes an INSERT ... RETURNING id and yields the new id.
func (s *Store) RunReturningID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, s.rebind(query), args...).Scan(&id); err != nil {
		return 0, classify("insert", err)
	}
	return id, nil
}

// Exec runs a statement and reports how many rows it touched.
func (s *Store) Exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return 0, classify("exec", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, unavailable("rows affected", err)
	}
	return n, nil
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	return rebindDollar(query)
}

func rebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorageUnavailable, op, err)
}

// classify maps constraint violations to validation errors and everything
// else to storage failures.
func classify(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23502":
			return fmt.Errorf("%w: required field is missing", domain.ErrValidation)
		case "23514":
			return fmt.Errorf("%w: %s", domain.ErrValidation, pqErr.Message)
		}
	}
	if strings.Contains(err.Error(), "constraint failed") {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return unavailable(op, err)
}

type gooseLogger struct {
	logger ports.LoggerPort
}

func (l *gooseLogger) Fatal(v ...interface{}) {
	l.logger.Error("Migration failed", map[string]interface{}{"error": fmt.Sprint(v...)})
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error("Migration failed", map[string]interface{}{"error": fmt.Sprintf(format, v...)})
}

func (l *gooseLogger) Print(v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprint(v...)), nil)
}

func (l *gooseLogger) Println(v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintln(v...)), nil)
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), nil)
}
