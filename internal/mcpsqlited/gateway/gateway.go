// Package gateway owns direct access to the SQLite database file.
//
// Every call opens its own connection, runs exactly one statement to
// completion and closes the connection before returning. There is no
// persistent handle and no pool.
package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/nsqlite/mcpsqlite/internal/log"
	"github.com/nsqlite/mcpsqlite/internal/sqlrow"
)

const (
	// DefaultDriverName is the database/sql driver registered by go-sqlite3.
	DefaultDriverName = "sqlite3"
	// DefaultBusyTimeout is how long SQLite waits on a locked file.
	DefaultBusyTimeout = 5 * time.Second

	listTablesQuery = "SELECT name FROM sqlite_master WHERE type='table'"
)

// Config represents the configuration for a Gateway.
type Config struct {
	// Logger is the shared logger.
	Logger log.Logger
	// Path is the database file path. A leading "~" is expanded.
	Path string
	// BusyTimeout is how long a statement waits for a locked database
	// before failing. Defaults to DefaultBusyTimeout.
	BusyTimeout time.Duration
	// ForeignKeys enables foreign key enforcement on every connection.
	ForeignKeys bool
	// DriverName is the database/sql driver to use. Defaults to
	// DefaultDriverName.
	DriverName string
}

// Gateway executes single SQL statements against one database file.
type Gateway struct {
	logger     log.Logger
	path       string
	driverName string
	dsn        string
}

// QueryError is returned when the database rejects a statement. Its
// message is the driver message, unchanged.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewGateway validates the configuration, creates the parent directories
// of the database file and makes sure the file exists.
func NewGateway(config Config) (*Gateway, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.Path == "" {
		return nil, errors.New("database path is required")
	}
	if config.BusyTimeout < 0 {
		return nil, errors.New("busy timeout cannot be negative")
	}
	if config.BusyTimeout == 0 {
		config.BusyTimeout = DefaultBusyTimeout
	}
	if config.DriverName == "" {
		config.DriverName = DefaultDriverName
	}

	dbPath, err := resolvePath(config.Path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	g := &Gateway{
		logger:     config.Logger,
		path:       dbPath,
		driverName: config.DriverName,
		dsn:        createDSN(dbPath, config.BusyTimeout, config.ForeignKeys),
	}

	// Opening once creates the file when it does not exist yet.
	db, err := g.open()
	if err != nil {
		return nil, err
	}
	defer g.close(db)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	g.logger.InfoNs(log.NsGateway, "database ready", log.KV{
		"path": dbPath,
	})
	return g, nil
}

// Path returns the resolved database file path.
func (g *Gateway) Path() string {
	return g.path
}

// ListTables returns one row with a "name" column per table in the
// database catalog.
func (g *Gateway) ListTables(ctx context.Context) (Result, error) {
	return g.Execute(ctx, listTablesQuery)
}

// Execute runs a single statement on a fresh connection.
//
// Writes (see classifyStatement) are committed and produce a single
// {"affected_rows": N} row. Everything else produces every resulting row.
func (g *Gateway) Execute(ctx context.Context, query string) (Result, error) {
	start := time.Now()
	kind := classifyStatement(query)

	stmt, extra := splitFirstStatement(query)
	if extra {
		g.logger.DebugNs(log.NsGateway, "statement rejected", log.KV{
			"kind":  kind.Value,
			"error": ErrMultipleStatements.Error(),
		})
		return Result{}, &QueryError{Query: query, Err: ErrMultipleStatements}
	}

	db, err := g.open()
	if err != nil {
		return Result{}, err
	}
	defer g.close(db)

	var res Result
	switch kind {
	case StatementKindWrite:
		res, err = g.executeWrite(ctx, db, stmt)
	default:
		res, err = g.executeRead(ctx, db, stmt)
	}
	if err != nil {
		g.logger.DebugNs(log.NsGateway, "statement failed", log.KV{
			"kind":  kind.Value,
			"error": err.Error(),
			"time":  time.Since(start).Seconds(),
		})
		return Result{}, err
	}

	g.logger.DebugNs(log.NsGateway, "statement executed", log.KV{
		"kind": kind.Value,
		"rows": len(res.Rows),
		"time": time.Since(start).Seconds(),
	})
	return res, nil
}

// open returns a handle limited to a single connection.
func (g *Gateway) open() (*sql.DB, error) {
	db, err := sql.Open(g.driverName, g.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func (g *Gateway) close(db *sql.DB) {
	if err := db.Close(); err != nil {
		g.logger.WarnNs(log.NsGateway, "failed to close connection", log.KV{
			"error": err.Error(),
		})
	}
}

// executeWrite runs the statement in a transaction and commits it.
func (g *Gateway) executeWrite(
	ctx context.Context, db *sql.DB, query string,
) (Result, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}

	return newWriteResult(rowsAffected), nil
}

// executeRead runs the statement and collects every resulting row.
func (g *Gateway) executeRead(
	ctx context.Context, db *sql.DB, query string,
) (Result, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}

	result := Result{
		Kind: StatementKindRead,
		Rows: []sqlrow.Row{},
	}
	for rows.Next() {
		values := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range scans {
			scans[i] = &values[i]
		}

		if err := rows.Scan(scans...); err != nil {
			return Result{}, &QueryError{Query: query, Err: err}
		}
		result.Rows = append(result.Rows, sqlrow.New(columns, values))
	}
	if err := rows.Err(); err != nil {
		return Result{}, &QueryError{Query: query, Err: err}
	}

	return result, nil
}
