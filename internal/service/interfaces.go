package service

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/models"
)

// CardService holds the business rules for cards: name uniqueness and the
// immutability of name and rarity.
type CardService interface {
	GetAllCards(ctx context.Context) ([]models.Card, error)
	GetCardByID(ctx context.Context, id int64) (models.Card, error)
	GetCardsByRarity(ctx context.Context, rarity string) ([]models.Card, error)
	GetCardByName(ctx context.Context, name string) (models.Card, error)
	// GetCardByUniqueKey expects a query with exactly one key naming a card
	// property, e.g. {"name": "Fireball"}.
	GetCardByUniqueKey(ctx context.Context, query map[string]any) (models.Card, error)
	AddNewCard(ctx context.Context, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, card models.Card) (models.Card, error)
	// DeleteCard reads the id from the single value of payload.
	DeleteCard(ctx context.Context, payload map[string]any) (bool, error)
}

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByUniqueKey(ctx context.Context, query map[string]any) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByCredentials(ctx context.Context, username, password string) (models.User, error)
	AddNewUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, payload map[string]any) (bool, error)
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
}

// DeckService holds the business rules for decks: (author, name) uniqueness
// and author ownership.
type DeckService interface {
	GetAllDecks(ctx context.Context) ([]models.Deck, error)
	GetDeckByID(ctx context.Context, id int64) (models.Deck, error)
	GetDecksByAuthorID(ctx context.Context, authorID int64) ([]models.Deck, error)
	GetDecksByName(ctx context.Context, name string) ([]models.Deck, error)
	GetDeckByUniqueKey(ctx context.Context, query map[string]any) ([]models.Deck, error)
	AddNewDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	UpdateDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	DeleteDeck(ctx context.Context, payload map[string]any) (bool, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) models.HealthStatus
}
