package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// cardRepository is the SQL implementation of [CardRepository].
type cardRepository struct {
	*DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] backed by db.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cardRepository) GetAll(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return queryRows(ctx, conn, r.selectCards().OrderBy("id"), func(rows *sql.Rows) (err error) {
			cards, err = mapCardResultSets(rows)
			return err
		})
	})
	if err != nil {
		return nil, r.storageError(ctx, "*cardRepository.GetAll", err)
	}

	return cards, nil
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (models.Card, bool, error) {
	return r.getWhere(ctx, "*cardRepository.GetByID", sq.Eq{"id": id})
}

func (r *cardRepository) GetByUniqueKey(ctx context.Context, key string, value any) (models.Card, bool, error) {
	column, err := columnFor(cardColumns, key)
	if err != nil {
		return models.Card{}, false, r.storageError(ctx, "*cardRepository.GetByUniqueKey", err)
	}

	return r.getWhere(ctx, "*cardRepository.GetByUniqueKey", sq.Eq{column: value})
}

func (r *cardRepository) ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error) {
	column, err := columnFor(cardColumns, key)
	if err != nil {
		return false, r.storageError(ctx, "*cardRepository.ExistsByUniqueKey", err)
	}

	query, args, err := r.countWhere(cardsTable, sq.Eq{column: value})
	if err != nil {
		return false, r.storageError(ctx, "*cardRepository.ExistsByUniqueKey", err)
	}

	var found bool
	err = r.withConn(ctx, func(conn *sql.Conn) (err error) {
		found, err = exists(ctx, conn, query, args)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, "*cardRepository.ExistsByUniqueKey", err)
	}

	return found, nil
}

func (r *cardRepository) GetByRarity(ctx context.Context, rarity string) ([]models.Card, error) {
	var cards []models.Card
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		builder := r.selectCards().Where(sq.Eq{"rarity": rarity}).OrderBy("id")
		return queryRows(ctx, conn, builder, func(rows *sql.Rows) (err error) {
			cards, err = mapCardResultSets(rows)
			return err
		})
	})
	if err != nil {
		return nil, r.storageError(ctx, "*cardRepository.GetByRarity", err)
	}

	return cards, nil
}

func (r *cardRepository) GetByName(ctx context.Context, name string) (models.Card, bool, error) {
	return r.getWhere(ctx, "*cardRepository.GetByName", sq.Eq{"card_name": name})
}

// Save inserts card and reads it back by name to learn the assigned id.
func (r *cardRepository) Save(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insertCard(card)
	if err != nil {
		return models.Card{}, r.storageError(ctx, "*cardRepository.Save", err)
	}

	var saved models.Card
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		if _, err := execAffected(ctx, conn, query, args); err != nil {
			return err
		}

		return queryRow(ctx, conn, r.selectCards().Where(sq.Eq{"card_name": card.Name}), func(row *sql.Row) error {
			found, ok, err := mapCardResultSet(row)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: card %q", ErrRecordMissingAfterWrite, card.Name)
			}
			saved = found
			return nil
		})
	})
	if err != nil {
		return models.Card{}, r.storageError(ctx, "*cardRepository.Save", err)
	}

	log.Debug().Str("func", "*cardRepository.Save").Int64("card_id", saved.ID).Msg("card saved")
	return saved, nil
}

func (r *cardRepository) Update(ctx context.Context, card models.Card) (models.Card, error) {
	query, args, err := r.updateCardStatistics(card)
	if err != nil {
		return models.Card{}, r.storageError(ctx, "*cardRepository.Update", err)
	}

	var updated models.Card
	err = r.withConn(ctx, func(conn *sql.Conn) error {
		affected, err := execAffected(ctx, conn, query, args)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: card %d", ErrRecordMissingAfterWrite, card.ID)
		}

		return queryRow(ctx, conn, r.selectCards().Where(sq.Eq{"id": card.ID}), func(row *sql.Row) error {
			found, ok, err := mapCardResultSet(row)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: card %d", ErrRecordMissingAfterWrite, card.ID)
			}
			updated = found
			return nil
		})
	})
	if err != nil {
		return models.Card{}, r.storageError(ctx, "*cardRepository.Update", err)
	}

	return updated, nil
}

func (r *cardRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := r.deleteByID(cardsTable, id)
	if err != nil {
		return false, r.storageError(ctx, "*cardRepository.DeleteByID", err)
	}

	var affected int64
	err = r.withConn(ctx, func(conn *sql.Conn) (err error) {
		affected, err = execAffected(ctx, conn, query, args)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, "*cardRepository.DeleteByID", err)
	}

	return affected > 0, nil
}

func (r *cardRepository) getWhere(ctx context.Context, funcName string, where sq.Eq) (models.Card, bool, error) {
	var (
		card  models.Card
		found bool
	)
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return queryRow(ctx, conn, r.selectCards().Where(where).OrderBy("id"), func(row *sql.Row) (err error) {
			card, found, err = mapCardResultSet(row)
			return err
		})
	})
	if err != nil {
		return models.Card{}, false, r.storageError(ctx, funcName, err)
	}

	return card, found, nil
}
