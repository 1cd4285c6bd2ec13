package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// deckRepository is the SQL implementation of [DeckRepository]. A deck is
// one "decks" row plus one "deck_card" row per card, numbered by position.
type deckRepository struct {
	*DB
	logger *logger.Logger
}

func NewDeckRepository(db *DB, logger *logger.Logger) DeckRepository {
	logger.Debug().Msg("creating deck repository")
	return &deckRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *deckRepository) GetAll(ctx context.Context) ([]models.Deck, error) {
	return r.listWhere(ctx, "*deckRepository.GetAll", nil)
}

func (r *deckRepository) GetByID(ctx context.Context, id int64) (models.Deck, bool, error) {
	return r.firstWhere(ctx, "*deckRepository.GetByID", sq.Eq{"d.id": id})
}

func (r *deckRepository) GetByUniqueKey(ctx context.Context, key string, value any) ([]models.Deck, error) {
	column, err := columnFor(deckColumns, key)
	if err != nil {
		return nil, r.storageError(ctx, "*deckRepository.GetByUniqueKey", err)
	}

	return r.listWhere(ctx, "*deckRepository.GetByUniqueKey", sq.Eq{column: value})
}

func (r *deckRepository) ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error) {
	column, err := columnFor(deckColumns, key)
	if err != nil {
		return false, r.storageError(ctx, "*deckRepository.ExistsByUniqueKey", err)
	}

	return r.existsWhere(ctx, "*deckRepository.ExistsByUniqueKey", sq.Eq{column: value})
}

func (r *deckRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]models.Deck, error) {
	return r.listWhere(ctx, "*deckRepository.GetByAuthorID", sq.Eq{"d.author_id": authorID})
}

func (r *deckRepository) GetByName(ctx context.Context, name string) ([]models.Deck, error) {
	return r.listWhere(ctx, "*deckRepository.GetByName", sq.Eq{"d.deck_name": name})
}

func (r *deckRepository) GetByAuthorIDAndName(ctx context.Context, authorID int64, name string) (models.Deck, bool, error) {
	return r.firstWhere(ctx, "*deckRepository.GetByAuthorIDAndName", sq.Eq{"d.author_id": authorID, "d.deck_name": name})
}

func (r *deckRepository) ExistsByAuthorIDAndName(ctx context.Context, authorID int64, name string) (bool, error) {
	return r.existsWhere(ctx, "*deckRepository.ExistsByAuthorIDAndName", sq.Eq{"d.author_id": authorID, "d.deck_name": name})
}

// Save inserts the deck row, reads its id back by (author, name) and
// inserts the memberships, all in one transaction.
func (r *deckRepository) Save(ctx context.Context, deck models.Deck) (models.Deck, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := r.insertDeck(deck)
	if err != nil {
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Save", err)
	}
	idQuery, idArgs, err := r.selectDeckID(deck.AuthorID, deck.Deckname)
	if err != nil {
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Save", err)
	}

	saved := deck
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := execAffected(ctx, tx, insertQuery, insertArgs); err != nil {
			return err
		}

		err := tx.QueryRowContext(ctx, idQuery, idArgs...).Scan(&saved.DeckID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: deck %q of author %d", ErrRecordMissingAfterWrite, deck.Deckname, deck.AuthorID)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return r.insertMemberships(ctx, tx, saved.DeckID, deck.DeckArray)
	})
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.Save").Int64("author_id", deck.AuthorID).Msg("transaction rolled back")
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Save", err)
	}

	saved.DeckArray = nonNilCards(deck.DeckArray)
	log.Debug().Str("func", "*deckRepository.Save").Int64("deck_id", saved.DeckID).Int("cards", len(saved.DeckArray)).Msg("deck saved")
	return saved, nil
}

// Update renames the deck and replaces its whole card list in one
// transaction. The author is left unchanged.
func (r *deckRepository) Update(ctx context.Context, deck models.Deck) (models.Deck, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.updateDeckName(deck)
	if err != nil {
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Update", err)
	}
	deleteQuery, deleteArgs, err := r.deleteDeckCards(deck.DeckID)
	if err != nil {
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Update", err)
	}

	err = r.inTx(ctx, func(tx *sql.Tx) error {
		affected, err := execAffected(ctx, tx, updateQuery, updateArgs)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: deck %d", ErrRecordMissingAfterWrite, deck.DeckID)
		}

		if _, err := execAffected(ctx, tx, deleteQuery, deleteArgs); err != nil {
			return err
		}

		return r.insertMemberships(ctx, tx, deck.DeckID, deck.DeckArray)
	})
	if err != nil {
		log.Err(err).Str("func", "*deckRepository.Update").Int64("deck_id", deck.DeckID).Msg("transaction rolled back")
		return models.Deck{}, r.storageError(ctx, "*deckRepository.Update", err)
	}

	deck.DeckArray = nonNilCards(deck.DeckArray)
	return deck, nil
}

// DeleteByID removes the memberships and then the deck in one transaction.
func (r *deckRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	membershipsQuery, membershipsArgs, err := r.deleteDeckCards(id)
	if err != nil {
		return false, r.storageError(ctx, "*deckRepository.DeleteByID", err)
	}
	deckQuery, deckArgs, err := r.deleteByID(decksTable, id)
	if err != nil {
		return false, r.storageError(ctx, "*deckRepository.DeleteByID", err)
	}

	var affected int64
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := execAffected(ctx, tx, membershipsQuery, membershipsArgs); err != nil {
			return err
		}

		affected, err = execAffected(ctx, tx, deckQuery, deckArgs)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, "*deckRepository.DeleteByID", err)
	}

	return affected > 0, nil
}

func (r *deckRepository) insertMemberships(ctx context.Context, tx *sql.Tx, deckID int64, cardIDs []int64) error {
	query, args, err := r.insertDeckCards(deckID, cardIDs)
	if err != nil || query == "" {
		return err
	}

	_, err = execAffected(ctx, tx, query, args)
	return err
}

func (r *deckRepository) listWhere(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Deck, error) {
	builder := r.selectDecks()
	if where != nil {
		builder = builder.Where(where)
	}

	var decks []models.Deck
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		return queryRows(ctx, conn, builder, func(rows *sql.Rows) (err error) {
			decks, err = mapDeckResultSets(rows)
			return err
		})
	})
	if err != nil {
		return nil, r.storageError(ctx, funcName, err)
	}

	return decks, nil
}

func (r *deckRepository) firstWhere(ctx context.Context, funcName string, where sq.Sqlizer) (models.Deck, bool, error) {
	decks, err := r.listWhere(ctx, funcName, where)
	if err != nil || len(decks) == 0 {
		return models.Deck{}, false, err
	}

	return decks[0], true, nil
}

func (r *deckRepository) existsWhere(ctx context.Context, funcName string, where sq.Sqlizer) (bool, error) {
	query, args, err := r.countWhere(decksTable+" d", where)
	if err != nil {
		return false, r.storageError(ctx, funcName, err)
	}

	var found bool
	err = r.withConn(ctx, func(conn *sql.Conn) (err error) {
		found, err = exists(ctx, conn, query, args)
		return err
	})
	if err != nil {
		return false, r.storageError(ctx, funcName, err)
	}

	return found, nil
}

func nonNilCards(cardIDs []int64) []int64 {
	if cardIDs == nil {
		return []int64{}
	}
	return cardIDs
}
