// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed REST client for the card-keeper server.
//
// [APIAdapter] hides the HTTP details: it serialises requests, keeps the
// bearer token issued by Register or Login, and turns error responses back
// into [app.Error] values so callers can use [errors.Is] with the same kinds
// the server raised (e.g. [app.ErrResourceConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/models"
)

// APIAdapter is the client side of the card-keeper REST API.
type APIAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Health calls GET /health. A 503 answer still yields the decoded
	// status; only transport failures return an error.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version calls GET /version.
	Version(ctx context.Context) (string, error)

	// Register creates a user and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token and stores it. The returned
	// token carries the user id read from its subject.
	Login(ctx context.Context, username, password string) (models.Token, error)

	GetCards(ctx context.Context) ([]models.Card, error)
	GetCardByID(ctx context.Context, id int64) (models.Card, error)
	AddCard(ctx context.Context, card models.Card) (models.Card, error)
	UpdateCard(ctx context.Context, card models.Card) (models.Card, error)
	DeleteCard(ctx context.Context, id int64) (bool, error)

	GetDecks(ctx context.Context) ([]models.Deck, error)
	GetDeckByID(ctx context.Context, id int64) (models.Deck, error)
	AddDeck(ctx context.Context, deck models.Deck) (models.Deck, error)
	DeleteDeck(ctx context.Context, id int64) (bool, error)
}
