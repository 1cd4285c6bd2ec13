package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// account creation and lookup against the "app_users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return queryRows(ctx, conn, r.selectUsers().OrderBy("id"), func(rows *sql.Rows) (err error) {
			users, err = mapUserResultSets(rows)
			return err
		})
	})
	if err != nil {
		return nil, r.storageError(ctx, "*userRepository.GetAll", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (models.User, bool, error) {
	return r.getWhere(ctx, "*userRepository.GetByID", sq.Eq{"id": id})
}

func (r *userRepository) GetByUniqueKey(ctx context.Context, key string, value any) (models.User, bool, error) {
	column, err := columnFor(userColumns, key)
	if err != nil {
		return models.User{}, false, r.storageError(ctx, "*userRepository.GetByUniqueKey", err)
	}

	return r.getWhere(ctx, "*userRepository.GetByUniqueKey", sq.Eq{column: value})
}

// ExistsByUniqueKey backs the username and email availability probes.
func (r *userRepository) ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error) {
	column, err := columnFor(userColumns, key)
	if err != nil {
		return false, r.storageError(ctx, "*userRepository.ExistsByUniqueKey", err)
	}

	query, args, err := r.countWhere(usersTable, sq.Eq{column: value})
	if err != nil {
		return false, r.storageError(ctx, "*userRepository.ExistsByUniqueKey", err)
	}

	var found bool
	err = r.withConn(ctx, func(conn *sql.Conn) (err error) {
		found, err = exists(ctx, conn, query, args)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, "*userRepository.ExistsByUniqueKey", err)
	}

	return found, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (models.User, bool, error) {
	return r.getWhere(ctx, "*userRepository.GetByUsername", sq.Eq{"username": username})
}

// GetByCredentials matches username and password exactly. Passwords are
// stored as given.
func (r *userRepository) GetByCredentials(ctx context.Context, username, password string) (models.User, bool, error) {
	return r.getWhere(ctx, "*userRepository.GetByCredentials", sq.Eq{"username": username, "password": password})
}

// Save inserts user and reads the row back by username.
//
// Error handling:
//   - unique violation on username or email → resource conflict.
//   - any other driver-level error → internal server error.
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insertUser(user)
	if err != nil {
		return models.User{}, r.storageError(ctx, "*userRepository.Save", err)
	}

	var saved models.User
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		if _, err := execAffected(ctx, conn, query, args); err != nil {
			return err
		}

		return queryRow(ctx, conn, r.selectUsers().Where(sq.Eq{"username": user.Username}), func(row *sql.Row) error {
			found, ok, err := mapUserResultSet(row)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: user %q", ErrRecordMissingAfterWrite, user.Username)
			}
			saved = found
			return nil
		})
	})
	if err != nil {
		return models.User{}, r.storageError(ctx, "*userRepository.Save", err)
	}

	log.Debug().Str("func", "*userRepository.Save").Int64("user_id", saved.ID).Msg("user saved")
	return saved, nil
}

func (r *userRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := r.updateUser(user)
	if err != nil {
		return models.User{}, r.storageError(ctx, "*userRepository.Update", err)
	}

	var updated models.User
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		affected, err := execAffected(ctx, conn, query, args)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: user %d", ErrRecordMissingAfterWrite, user.ID)
		}

		return queryRow(ctx, conn, r.selectUsers().Where(sq.Eq{"id": user.ID}), func(row *sql.Row) error {
			found, ok, err := mapUserResultSet(row)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: user %d", ErrRecordMissingAfterWrite, user.ID)
			}
			updated = found
			return nil
		})
	})
	if err != nil {
		return models.User{}, r.storageError(ctx, "*userRepository.Update", err)
	}

	return updated, nil
}

// DeleteByID removes the user. Decks authored by the user are removed by
// the ON DELETE CASCADE foreign key.
func (r *userRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.deleteByID(usersTable, id)
	if err != nil {
		return false, r.storageError(ctx, "*userRepository.DeleteByID", err)
	}

	var affected int64
	err = r.withConn(ctx, func(conn *sql.Conn) (err error) {
		affected, err = execAffected(ctx, conn, query, args)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, "*userRepository.DeleteByID", err)
	}

	return affected > 0, nil
}

func (r *userRepository) getWhere(ctx context.Context, funcName string, where sq.Eq) (models.User, bool, error) {
	var (
		user  models.User
		found bool
	)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return queryRow(ctx, conn, r.selectUsers().Where(where).OrderBy("id"), func(row *sql.Row) (err error) {
			user, found, err = mapUserResultSet(row)
			return err
		})
	})
	if err != nil {
		return models.User{}, false, r.storageError(ctx, funcName, err)
	}

	return user, found, nil
}
