package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, "pgx", time.Second, NewPostgresErrorClassifier(), logger.Nop()), mock, conn
}

func newTestCardRepo(t *testing.T) (*cardRepository, sqlmock.Sqlmock) {
	db, mock, _ := newTestDB(t)
	return &cardRepository{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock, _ := newTestDB(t)
	return &userRepository{DB: db, logger: logger.Nop()}, mock
}

func newTestDeckRepo(t *testing.T) (*deckRepository, sqlmock.Sqlmock) {
	db, mock, _ := newTestDB(t)
	return &deckRepository{DB: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func cardRows() *sqlmock.Rows {
	return sqlmock.NewRows(cardSelectColumns)
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userSelectColumns)
}

func deckRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "author_id", "deck_name", "card_id"})
}
