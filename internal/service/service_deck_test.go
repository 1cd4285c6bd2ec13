package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/mock"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/internal/utils"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDeckSvc(t *testing.T) (DeckService, *mock.MockDeckRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeckRepository(ctrl)
	return NewDeckService(repo, logger.Nop()), repo
}

func aggro(id int64) models.Deck {
	return models.Deck{DeckID: id, AuthorID: 3, Deckname: "Aggro", DeckArray: []int64{1, 1, 2}}
}

func TestDeckService_GetAllDecks_Empty(t *testing.T) {
	svc, repo := newTestDeckSvc(t)
	repo.EXPECT().GetAll(gomock.Any()).Return([]models.Deck{}, nil)

	_, err := svc.GetAllDecks(context.Background())
	assert.ErrorIs(t, err, app.ErrResourceNotFound)
	assert.Equal(t, app.MsgNoDecksFound, err.Error())
}

func TestDeckService_GetDecksByAuthorID(t *testing.T) {
	svc, repo := newTestDeckSvc(t)
	repo.EXPECT().GetByAuthorID(gomock.Any(), int64(3)).Return([]models.Deck{aggro(1)}, nil)

	decks, err := svc.GetDecksByAuthorID(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, decks, 1)

	repo.EXPECT().GetByAuthorID(gomock.Any(), int64(4)).Return(nil, nil)
	_, err = svc.GetDecksByAuthorID(context.Background(), 4)
	assert.Equal(t, app.MsgAuthorDecksNotFound, err.Error())
}

func TestDeckService_GetDecksByName(t *testing.T) {
	svc, repo := newTestDeckSvc(t)
	repo.EXPECT().GetByName(gomock.Any(), "Aggro").Return(nil, nil)

	_, err := svc.GetDecksByName(context.Background(), "Aggro")
	assert.ErrorIs(t, err, app.ErrResourceNotFound)
	assert.Equal(t, app.MsgDeckNameNotFound, err.Error())
}

func TestDeckService_GetDeckByUniqueKey(t *testing.T) {
	ctx := context.Background()

	t.Run("deckId", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)

		decks, err := svc.GetDeckByUniqueKey(ctx, map[string]any{"deckId": "1"})
		require.NoError(t, err)
		assert.Equal(t, []models.Deck{aggro(1)}, decks)
	})

	t.Run("deckname", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByUniqueKey(gomock.Any(), "deckname", "Aggro").Return([]models.Deck{aggro(1), aggro(2)}, nil)

		decks, err := svc.GetDeckByUniqueKey(ctx, map[string]any{"deckname": "Aggro"})
		require.NoError(t, err)
		assert.Len(t, decks, 2)
	})

	t.Run("deckArray is rejected by storage", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByUniqueKey(gomock.Any(), "deckArray", "1").
			Return(nil, app.NewInvalidInputError(app.MsgUnknownQueryKey))

		_, err := svc.GetDeckByUniqueKey(ctx, map[string]any{"deckArray": "1"})
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})
}

// ── AddNewDeck ───────────────────────────────────────────────────────────────

func TestDeckService_AddNewDeck_Success(t *testing.T) {
	svc, repo := newTestDeckSvc(t)
	deck := aggro(0)

	gomock.InOrder(
		repo.EXPECT().ExistsByAuthorIDAndName(gomock.Any(), int64(3), "Aggro").Return(false, nil),
		repo.EXPECT().Save(gomock.Any(), deck).Return(aggro(10), nil),
	)

	saved, err := svc.AddNewDeck(utils.WithUserID(context.Background(), 3), deck)
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.DeckID)
}

func TestDeckService_AddNewDeck_DuplicateName(t *testing.T) {
	svc, repo := newTestDeckSvc(t)
	repo.EXPECT().ExistsByAuthorIDAndName(gomock.Any(), int64(3), "Aggro").Return(true, nil)

	_, err := svc.AddNewDeck(context.Background(), aggro(0))
	assert.ErrorIs(t, err, app.ErrResourceConflict)
	assert.Equal(t, app.MsgDuplicateDeckName, err.Error())
}

func TestDeckService_AddNewDeck_Validation(t *testing.T) {
	svc, _ := newTestDeckSvc(t)

	empty := aggro(0)
	empty.DeckArray = []int64{}
	noCards := aggro(0)
	noCards.DeckArray = nil
	noName := aggro(0)
	noName.Deckname = ""

	_, err := svc.AddNewDeck(context.Background(), noCards)
	assert.ErrorIs(t, err, app.ErrInvalidInput)
	_, err = svc.AddNewDeck(context.Background(), noName)
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.AddNewDeck(utils.WithUserID(context.Background(), 99), empty)
	assert.ErrorIs(t, err, app.ErrAuthorization, "empty deck passes validation and reaches the ownership check")
}

// ── UpdateDeck ───────────────────────────────────────────────────────────────

func TestDeckService_UpdateDeck(t *testing.T) {
	ctx := utils.WithUserID(context.Background(), 3)

	t.Run("rename", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		update := aggro(1)
		update.Deckname = "Aggro v2"
		update.DeckArray = []int64{5}

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)
		repo.EXPECT().ExistsByAuthorIDAndName(gomock.Any(), int64(3), "Aggro v2").Return(false, nil)
		repo.EXPECT().Update(gomock.Any(), update).Return(update, nil)

		got, err := svc.UpdateDeck(ctx, update)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, got.DeckArray)
	})

	t.Run("same name only replaces cards", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		update := aggro(1)
		update.DeckArray = []int64{9}

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)
		repo.EXPECT().Update(gomock.Any(), update).Return(update, nil)

		_, err := svc.UpdateDeck(ctx, update)
		require.NoError(t, err)
	})

	t.Run("name already used by the author", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		update := aggro(1)
		update.Deckname = "Control"

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)
		repo.EXPECT().ExistsByAuthorIDAndName(gomock.Any(), int64(3), "Control").Return(true, nil)

		_, err := svc.UpdateDeck(ctx, update)
		assert.ErrorIs(t, err, app.ErrResourceConflict)
		assert.Equal(t, app.MsgDeckNameTaken, err.Error())
	})

	t.Run("author change", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		update := aggro(1)
		update.AuthorID = 4

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)

		_, err := svc.UpdateDeck(ctx, update)
		assert.ErrorIs(t, err, app.ErrResourceConflict)
		assert.Equal(t, app.MsgDeckAuthorImmutable, err.Error())
	})

	t.Run("not the author", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)

		_, err := svc.UpdateDeck(utils.WithUserID(context.Background(), 8), aggro(1))
		assert.ErrorIs(t, err, app.ErrAuthorization)
	})

	t.Run("missing deck", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(models.Deck{}, false, nil)

		_, err := svc.UpdateDeck(ctx, aggro(1))
		assert.Equal(t, app.MsgDeckNotFoundUpdate, err.Error())
	})
}

func TestDeckService_DeleteDeck(t *testing.T) {
	ctx := utils.WithUserID(context.Background(), 3)

	t.Run("author deletes", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(true, nil)

		ok, err := svc.DeleteDeck(ctx, map[string]any{"deckId": float64(1)})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(aggro(1), true, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(false, app.NewInternalServerError(store.ErrCommitingTransaction))

		_, err := svc.DeleteDeck(ctx, map[string]any{"id": "1"})
		assert.ErrorIs(t, err, app.ErrInternalServer)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := newTestDeckSvc(t)
		repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(models.Deck{}, false, nil)

		_, err := svc.DeleteDeck(ctx, map[string]any{"id": "2"})
		assert.Equal(t, app.MsgDeckNotFoundDelete, err.Error())
	})
}
