package store

import (
	"fmt"

	"github.com/MKhiriev/go-card-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// Query builders. Each returns SQL in the placeholder dialect of the DB
// together with its arguments.

func (db *DB) selectCards() sq.SelectBuilder {
	return db.statements.Select(cardSelectColumns...).From(cardsTable)
}

func (db *DB) selectUsers() sq.SelectBuilder {
	return db.statements.Select(userSelectColumns...).From(usersTable)
}

// selectDecks joins memberships so one row is produced per deck card, plus a
// single row with a NULL card for decks without cards.
func (db *DB) selectDecks() sq.SelectBuilder {
	return db.statements.Select(deckSelectColumns...).
		From(decksTable + " d").
		LeftJoin(deckCardTable + " dc ON dc.deck_id = d.id").
		OrderBy("d.id", "dc.position")
}

func (db *DB) countWhere(table string, where sq.Sqlizer) (string, []any, error) {
	return buildSQL(db.statements.Select("COUNT(1)").From(table).Where(where))
}

func (db *DB) insertCard(card models.Card) (string, []any, error) {
	return buildSQL(db.statements.Insert(cardsTable).
		Columns("card_name", "rarity", "percent_in_decks", "copies_in_decks", "deck_winrate", "times_played", "played_winrate").
		Values(card.Name, card.Rarity, card.PercentInDecks, card.CopiesInDecks, card.DeckWinRate, card.TimesPlayed, card.PlayedWinRate))
}

// updateCardStatistics only touches numeric columns: name and rarity are
// immutable after creation.
func (db *DB) updateCardStatistics(card models.Card) (string, []any, error) {
	return buildSQL(db.statements.Update(cardsTable).
		Set("percent_in_decks", card.PercentInDecks).
		Set("copies_in_decks", card.CopiesInDecks).
		Set("deck_winrate", card.DeckWinRate).
		Set("times_played", card.TimesPlayed).
		Set("played_winrate", card.PlayedWinRate).
		Where(sq.Eq{"id": card.ID}))
}

func (db *DB) insertUser(user models.User) (string, []any, error) {
	return buildSQL(db.statements.Insert(usersTable).
		Columns("username", "first_name", "last_name", "email", "password").
		Values(user.Username, user.FirstName, user.LastName, user.Email, user.Password))
}

// updateUser leaves username untouched.
func (db *DB) updateUser(user models.User) (string, []any, error) {
	return buildSQL(db.statements.Update(usersTable).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("email", user.Email).
		Set("password", user.Password).
		Where(sq.Eq{"id": user.ID}))
}

func (db *DB) insertDeck(deck models.Deck) (string, []any, error) {
	return buildSQL(db.statements.Insert(decksTable).
		Columns("author_id", "deck_name").
		Values(deck.AuthorID, deck.Deckname))
}

func (db *DB) selectDeckID(authorID int64, name string) (string, []any, error) {
	return buildSQL(db.statements.Select("id").From(decksTable).
		Where(sq.Eq{"author_id": authorID, "deck_name": name}))
}

func (db *DB) updateDeckName(deck models.Deck) (string, []any, error) {
	return buildSQL(db.statements.Update(decksTable).
		Set("deck_name", deck.Deckname).
		Where(sq.Eq{"id": deck.DeckID}))
}

// insertDeckCards returns an empty query when cardIDs is empty.
func (db *DB) insertDeckCards(deckID int64, cardIDs []int64) (string, []any, error) {
	if len(cardIDs) == 0 {
		return "", nil, nil
	}

	insert := db.statements.Insert(deckCardTable).Columns("deck_id", "card_id", "position")
	for position, cardID := range cardIDs {
		insert = insert.Values(deckID, cardID, position)
	}
	return buildSQL(insert)
}

func (db *DB) deleteDeckCards(deckID int64) (string, []any, error) {
	return buildSQL(db.statements.Delete(deckCardTable).Where(sq.Eq{"deck_id": deckID}))
}

func (db *DB) deleteByID(table string, id int64) (string, []any, error) {
	return buildSQL(db.statements.Delete(table).Where(sq.Eq{"id": id}))
}

func buildSQL(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
