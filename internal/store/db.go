package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps the *sql.DB pool together with everything a repository needs to
// talk to it: the SQL dialect, the driver error classifier and the
// connection acquire timeout.
type DB struct {
	*sql.DB
	driver             string
	acquireTimeout     time.Duration
	statements         sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, acquireTimeout time.Duration, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == "pgx" {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		acquireTimeout:     acquireTimeout,
		statements:         sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies every pending migration for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// withConn takes a dedicated connection from the pool, runs fn on it and
// returns the connection to the pool on every exit path. Waiting for a free
// connection is bounded by acquireTimeout; fn itself runs under ctx.
func (db *DB) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	acquireCtx, cancel := ctx, context.CancelFunc(func() {})
	if db.acquireTimeout > 0 {
		acquireCtx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
	}

	conn, err := db.Conn(acquireCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}
