// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/models"
)

// CardRepository persists [models.Card] records in the "cards" table.
//
// Single-record finders report absence through the found flag instead of an
// error. Every error returned is an *app.Error: conflicts and broken
// references are classified, everything else is an internal error.
type CardRepository interface {
	GetAll(ctx context.Context) ([]models.Card, error)
	GetByID(ctx context.Context, id int64) (card models.Card, found bool, err error)
	// GetByUniqueKey looks a card up by a JSON property name such as "name".
	GetByUniqueKey(ctx context.Context, key string, value any) (card models.Card, found bool, err error)
	ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error)
	GetByRarity(ctx context.Context, rarity string) ([]models.Card, error)
	GetByName(ctx context.Context, name string) (card models.Card, found bool, err error)
	// Save inserts the card and reads it back by name to obtain its id.
	Save(ctx context.Context, card models.Card) (models.Card, error)
	// Update overwrites the numeric statistics of the card with card.ID.
	Update(ctx context.Context, card models.Card) (models.Card, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// UserRepository persists [models.User] records in the "app_users" table.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (user models.User, found bool, err error)
	GetByUniqueKey(ctx context.Context, key string, value any) (user models.User, found bool, err error)
	ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error)
	GetByUsername(ctx context.Context, username string) (user models.User, found bool, err error)
	GetByCredentials(ctx context.Context, username, password string) (user models.User, found bool, err error)
	// Save inserts the user and reads it back by username.
	Save(ctx context.Context, user models.User) (models.User, error)
	// Update overwrites every mutable field of the user with user.ID.
	Update(ctx context.Context, user models.User) (models.User, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// DeckRepository persists [models.Deck] records across the "decks" and
// "deck_card" tables. Save, Update and DeleteByID run in a single
// transaction each.
type DeckRepository interface {
	GetAll(ctx context.Context) ([]models.Deck, error)
	GetByID(ctx context.Context, id int64) (deck models.Deck, found bool, err error)
	// GetByUniqueKey returns every deck whose property key equals value.
	GetByUniqueKey(ctx context.Context, key string, value any) ([]models.Deck, error)
	ExistsByUniqueKey(ctx context.Context, key string, value any) (bool, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]models.Deck, error)
	GetByName(ctx context.Context, name string) ([]models.Deck, error)
	GetByAuthorIDAndName(ctx context.Context, authorID int64, name string) (deck models.Deck, found bool, err error)
	ExistsByAuthorIDAndName(ctx context.Context, authorID int64, name string) (bool, error)
	Save(ctx context.Context, deck models.Deck) (models.Deck, error)
	Update(ctx context.Context, deck models.Deck) (models.Deck, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// Pinger reports database reachability for health checks.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator maps driver errors onto [ErrorClassification] values so
// repositories can translate them without knowing the driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
