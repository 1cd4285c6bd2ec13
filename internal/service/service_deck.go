// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/internal/validators"
	"github.com/MKhiriev/go-card-keeper/models"
)

type deckService struct {
	deckRepository store.DeckRepository

	logger *logger.Logger
}

func NewDeckService(deckRepository store.DeckRepository, logger *logger.Logger) DeckService {
	return &deckService{
		deckRepository: deckRepository,
		logger:         logger,
	}
}

func (s *deckService) GetAllDecks(ctx context.Context) ([]models.Deck, error) {
	decks, err := s.deckRepository.GetAll(ctx)
	if err != nil {
		logFailure(ctx, "*deckService.GetAllDecks", err)
		return nil, err
	}

	if !validators.HasData(decks) {
		return nil, app.NewResourceNotFoundError(app.MsgNoDecksFound)
	}

	return decks, nil
}

func (s *deckService) GetDeckByID(ctx context.Context, id int64) (models.Deck, error) {
	if !validators.IsValidID(id) {
		return models.Deck{}, app.NewInvalidInputError(app.MsgValidIDNotInput)
	}

	deck, found, err := s.deckRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*deckService.GetDeckByID", err)
		return models.Deck{}, err
	}
	if !found {
		return models.Deck{}, app.NewResourceNotFoundError(app.MsgDeckIDNotFound)
	}

	return deck, nil
}

func (s *deckService) GetDecksByAuthorID(ctx context.Context, authorID int64) ([]models.Deck, error) {
	if !validators.IsValidID(authorID) {
		return nil, app.NewInvalidInputError(app.MsgValidIDNotInput)
	}

	decks, err := s.deckRepository.GetByAuthorID(ctx, authorID)
	if err != nil {
		logFailure(ctx, "*deckService.GetDecksByAuthorID", err)
		return nil, err
	}
	if !validators.HasData(decks) {
		return nil, app.NewResourceNotFoundError(app.MsgAuthorDecksNotFound)
	}

	return decks, nil
}

func (s *deckService) GetDecksByName(ctx context.Context, name string) ([]models.Deck, error) {
	if !validators.IsValidString(name) {
		return nil, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	decks, err := s.deckRepository.GetByName(ctx, name)
	if err != nil {
		logFailure(ctx, "*deckService.GetDecksByName", err)
		return nil, err
	}
	if !validators.HasData(decks) {
		return nil, app.NewResourceNotFoundError(app.MsgDeckNameNotFound)
	}

	return decks, nil
}

// GetDeckByUniqueKey returns a list because names are only unique per
// author. A "deckId" lookup yields at most one deck.
func (s *deckService) GetDeckByUniqueKey(ctx context.Context, query map[string]any) ([]models.Deck, error) {
	key, value, err := singleEntry(query)
	if err != nil {
		return nil, err
	}

	if !validators.IsPropertyOf(key, models.Deck{}) {
		return nil, app.NewInvalidInputError(app.MsgUnknownQueryKey)
	}

	if key == "deckId" {
		id, err := validators.ParseID(value)
		if err != nil {
			return nil, app.NewInvalidInputError(app.MsgValidIDNotInput)
		}

		deck, err := s.GetDeckByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return []models.Deck{deck}, nil
	}

	if !validators.IsValidString(value) {
		return nil, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	decks, err := s.deckRepository.GetByUniqueKey(ctx, key, value)
	if err != nil {
		logFailure(ctx, "*deckService.GetDeckByUniqueKey", err)
		return nil, err
	}
	if !validators.HasData(decks) {
		return nil, app.NewResourceNotFoundError("")
	}

	return decks, nil
}

// AddNewDeck rejects a second deck with the same name by the same author.
// An empty card list is accepted; a missing one is not.
func (s *deckService) AddNewDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	if !validators.IsValidObject(deck, "deckId") {
		return models.Deck{}, app.NewInvalidInputError(app.MsgInvalidDeckObject)
	}

	if err := authorizeOwner(ctx, "*deckService.AddNewDeck", deck.AuthorID); err != nil {
		return models.Deck{}, err
	}

	taken, err := s.deckRepository.ExistsByAuthorIDAndName(ctx, deck.AuthorID, deck.Deckname)
	if err != nil {
		logFailure(ctx, "*deckService.AddNewDeck", err)
		return models.Deck{}, err
	}
	if taken {
		return models.Deck{}, app.NewResourceConflictError(app.MsgDuplicateDeckName)
	}

	saved, err := s.deckRepository.Save(ctx, deck)
	if err != nil {
		logFailure(ctx, "*deckService.AddNewDeck", err)
		return models.Deck{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*deckService.AddNewDeck").
		Int64("deck_id", saved.DeckID).
		Int64("author_id", saved.AuthorID).
		Msg("deck added")
	return saved, nil
}

// UpdateDeck renames the deck and replaces its card list. The author cannot
// change, and the new name must be free among the author's other decks.
func (s *deckService) UpdateDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	if !validators.IsValidID(deck.DeckID) || !validators.IsValidObject(deck, "deckId") {
		return models.Deck{}, app.NewInvalidInputError(app.MsgInvalidDeckObject)
	}

	existing, found, err := s.deckRepository.GetByID(ctx, deck.DeckID)
	if err != nil {
		logFailure(ctx, "*deckService.UpdateDeck", err)
		return models.Deck{}, err
	}
	if !found {
		return models.Deck{}, app.NewResourceNotFoundError(app.MsgDeckNotFoundUpdate)
	}

	if err := authorizeOwner(ctx, "*deckService.UpdateDeck", existing.AuthorID); err != nil {
		return models.Deck{}, err
	}

	if existing.AuthorID != deck.AuthorID {
		return models.Deck{}, app.NewResourceConflictError(app.MsgDeckAuthorImmutable)
	}

	if existing.Deckname != deck.Deckname {
		taken, err := s.deckRepository.ExistsByAuthorIDAndName(ctx, deck.AuthorID, deck.Deckname)
		if err != nil {
			logFailure(ctx, "*deckService.UpdateDeck", err)
			return models.Deck{}, err
		}
		if taken {
			return models.Deck{}, app.NewResourceConflictError(app.MsgDeckNameTaken)
		}
	}

	updated, err := s.deckRepository.Update(ctx, deck)
	if err != nil {
		logFailure(ctx, "*deckService.UpdateDeck", err)
		return models.Deck{}, err
	}

	return updated, nil
}

// DeleteDeck removes the deck together with its card memberships.
func (s *deckService) DeleteDeck(ctx context.Context, payload map[string]any) (bool, error) {
	id, err := payloadID(payload)
	if err != nil {
		return false, err
	}

	existing, found, err := s.deckRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*deckService.DeleteDeck", err)
		return false, err
	}
	if !found {
		return false, app.NewResourceNotFoundError(app.MsgDeckNotFoundDelete)
	}

	if err := authorizeOwner(ctx, "*deckService.DeleteDeck", existing.AuthorID); err != nil {
		return false, err
	}

	deleted, err := s.deckRepository.DeleteByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*deckService.DeleteDeck", err)
		return false, err
	}

	return deleted, nil
}
