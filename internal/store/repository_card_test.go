package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knifeJuggler() models.Card {
	return models.Card{
		Name:           "Knife Juggler",
		Rarity:         "Rare",
		PercentInDecks: 12.5,
		CopiesInDecks:  1.8,
		DeckWinRate:    51.2,
		TimesPlayed:    1000,
		PlayedWinRate:  53.4,
	}
}

func addCardRow(rows *sqlmock.Rows, id int64, c models.Card) *sqlmock.Rows {
	return rows.AddRow(id, c.Name, c.Rarity, c.PercentInDecks, c.CopiesInDecks, c.DeckWinRate, c.TimesPlayed, c.PlayedWinRate)
}

func TestCardRepository_GetAll(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	c := knifeJuggler()
	mock.ExpectQuery(`SELECT (.+) FROM cards ORDER BY id`).
		WillReturnRows(addCardRow(addCardRow(cardRows(), 1, c), 2, models.Card{Name: "Ragnaros", Rarity: "Legendary"}))

	cards, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(1), cards[0].ID)
	assert.Equal(t, "Knife Juggler", cards[0].Name)
	assert.Equal(t, 51.2, cards[0].DeckWinRate)
	assert.Equal(t, "Ragnaros", cards[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetAll_Empty(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM cards`).WillReturnRows(cardRows())

	cards, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestCardRepository_GetAll_QueryError(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM cards`).WillReturnError(errors.New("db network error"))

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, app.ErrInternalServer)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotContains(t, err.Error(), "db network error")
}

func TestCardRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCardRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cards WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(addCardRow(cardRows(), 1, knifeJuggler()))

		card, found, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Knife Juggler", card.Name)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestCardRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cards WHERE id = \$1`).
			WithArgs(int64(999999)).
			WillReturnRows(cardRows())

		card, found, err := repo.GetByID(context.Background(), 999999)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, models.Card{}, card)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestCardRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cards`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		_, _, err := repo.GetByID(context.Background(), 1)
		assert.ErrorIs(t, err, ErrScanningRow)
		assert.ErrorIs(t, err, app.ErrInternalServer)
	})
}

func TestCardRepository_GetByUniqueKey_TranslatesColumn(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE deck_winrate = \$1`).
		WithArgs("51.2").
		WillReturnRows(addCardRow(cardRows(), 1, knifeJuggler()))

	_, found, err := repo.GetByUniqueKey(context.Background(), "deckWinRate", "51.2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_GetByUniqueKey_UnknownKey(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	_, _, err := repo.GetByUniqueKey(context.Background(), "card_name; DROP TABLE cards", "x")
	assert.ErrorIs(t, err, app.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query must be issued")
}

func TestCardRepository_ExistsByUniqueKey(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"exists", 1, true},
		{"absent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCardRepo(t)
			mock.ExpectQuery(`SELECT COUNT\(1\) FROM cards WHERE card_name = \$1`).
				WithArgs("Knife Juggler").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.ExistsByUniqueKey(context.Background(), "name", "Knife Juggler")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardRepository_GetByRarity(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE rarity = \$1 ORDER BY id`).
		WithArgs("Rare").
		WillReturnRows(addCardRow(cardRows(), 1, knifeJuggler()))

	cards, err := repo.GetByRarity(context.Background(), "Rare")
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestCardRepository_Save(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	c := knifeJuggler()

	mock.ExpectExec(`INSERT INTO cards`).
		WithArgs(c.Name, c.Rarity, c.PercentInDecks, c.CopiesInDecks, c.DeckWinRate, c.TimesPlayed, c.PlayedWinRate).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE card_name = \$1`).
		WithArgs(c.Name).
		WillReturnRows(addCardRow(cardRows(), 1, c))

	saved, err := repo.Save(context.Background(), c)
	require.NoError(t, err)

	want := c
	want.ID = 1
	assert.Equal(t, want, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Save_UniqueViolation(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	mock.ExpectExec(`INSERT INTO cards`).WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Save(context.Background(), knifeJuggler())
	assert.ErrorIs(t, err, app.ErrResourceConflict)
}

func TestCardRepository_Save_MissingAfterWrite(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	mock.ExpectExec(`INSERT INTO cards`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE card_name`).WillReturnRows(cardRows())

	_, err := repo.Save(context.Background(), knifeJuggler())
	assert.ErrorIs(t, err, app.ErrInternalServer)
	assert.ErrorIs(t, err, ErrRecordMissingAfterWrite)
}

func TestCardRepository_Update(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	c := knifeJuggler()
	c.ID = 4
	c.TimesPlayed = 2000

	mock.ExpectExec(`UPDATE cards SET percent_in_decks = \$1, copies_in_decks = \$2, deck_winrate = \$3, times_played = \$4, played_winrate = \$5 WHERE id = \$6`).
		WithArgs(c.PercentInDecks, c.CopiesInDecks, c.DeckWinRate, c.TimesPlayed, c.PlayedWinRate, c.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE id = \$1`).
		WithArgs(c.ID).
		WillReturnRows(addCardRow(cardRows(), c.ID, c))

	updated, err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, c, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCardRepository_Update_NoRowsAffected(t *testing.T) {
	repo, mock := newTestCardRepo(t)

	mock.ExpectExec(`UPDATE cards`).WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), models.Card{ID: 9})
	assert.ErrorIs(t, err, ErrRecordMissingAfterWrite)
}

func TestCardRepository_DeleteByID(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"deleted", 1, true},
		{"nothing deleted", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCardRepo(t)
			mock.ExpectExec(`DELETE FROM cards WHERE id = \$1`).
				WithArgs(int64(3)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := repo.DeleteByID(context.Background(), 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardRepository_DeleteByID_Error(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	mock.ExpectExec(`DELETE FROM cards`).WillReturnError(errors.New("boom"))

	ok, err := repo.DeleteByID(context.Background(), 3)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestCardRepository_GetByUniqueKey_NonUniqueKeyIsOrdered(t *testing.T) {
	repo, mock := newTestCardRepo(t)
	mock.ExpectQuery(`SELECT (.+) FROM cards WHERE rarity = \$1 ORDER BY id`).
		WithArgs("Rare").
		WillReturnRows(addCardRow(cardRows(), 1, knifeJuggler()))

	card, found, err := repo.GetByUniqueKey(context.Background(), "rarity", "Rare")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(1), card.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
