//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresPort = "5432/tcp"

// startPostgres runs a throwaway PostgreSQL container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     "cards",
				"POSTGRES_PASSWORD": "cards",
				"POSTGRES_DB":       "cards",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort(postgresPort),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)

	return fmt.Sprintf("postgres://cards:cards@%s:%s/cards?sslmode=disable", host, port.Port())
}

func TestPostgres_Repositories(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	cfg := configDB(config.DriverPostgres, dsn)
	cfg.MaxOpenConns = 5
	db, err := NewStorage(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	repos := NewRepositories(db, logger.Nop())

	user, err := repos.UserRepository.Save(ctx, models.User{
		Username: "real_user", FirstName: "Real", LastName: "User", Email: "real@example.com", Password: "p4ss",
	})
	require.NoError(t, err)

	_, err = repos.UserRepository.Save(ctx, models.User{
		Username: "other", FirstName: "O", LastName: "U", Email: "real@example.com", Password: "p",
	})
	assert.ErrorIs(t, err, app.ErrResourceConflict)

	card, err := repos.CardRepository.Save(ctx, models.Card{
		Name: "Knife Juggler", Rarity: "Rare",
		PercentInDecks: 12.5, CopiesInDecks: 1.8, DeckWinRate: 51.2, TimesPlayed: 1000, PlayedWinRate: 53.4,
	})
	require.NoError(t, err)

	deck, err := repos.DeckRepository.Save(ctx, models.Deck{AuthorID: user.ID, Deckname: "Aggro", DeckArray: []int64{card.ID, card.ID}})
	require.NoError(t, err)

	got, found, err := repos.DeckRepository.GetByAuthorIDAndName(ctx, user.ID, "Aggro")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, deck, got)

	_, err = repos.DeckRepository.Save(ctx, models.Deck{AuthorID: user.ID, Deckname: "Broken", DeckArray: []int64{card.ID + 100}})
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	ok, err := repos.UserRepository.DeleteByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	decks, err := repos.DeckRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, decks, "decks cascade with their author")
}
