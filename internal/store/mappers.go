// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// mapCardResultSet scans one card. A missing row is reported as
// found == false with a nil error.
func mapCardResultSet(row rowScanner) (models.Card, bool, error) {
	var card models.Card
	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.Rarity,
		&card.PercentInDecks,
		&card.CopiesInDecks,
		&card.DeckWinRate,
		&card.TimesPlayed,
		&card.PlayedWinRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Card{}, false, nil
	}
	if err != nil {
		return models.Card{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, true, nil
}

func mapCardResultSets(rows *sql.Rows) ([]models.Card, error) {
	cards := make([]models.Card, 0, 16)
	for rows.Next() {
		card, _, err := mapCardResultSet(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cards, nil
}

// mapUserResultSet scans one user. A missing row is reported as
// found == false with a nil error.
func mapUserResultSet(row rowScanner) (models.User, bool, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, true, nil
}

func mapUserResultSets(rows *sql.Rows) ([]models.User, error) {
	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, _, err := mapUserResultSet(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// mapDeckResultSets folds joined (deck, card) rows into decks. Rows must be
// ordered by deck id and then by membership position; a NULL card id marks
// a deck with no cards.
func mapDeckResultSets(rows *sql.Rows) ([]models.Deck, error) {
	decks := make([]models.Deck, 0, 8)
	for rows.Next() {
		var (
			deck   models.Deck
			cardID sql.NullInt64
		)
		if err := rows.Scan(&deck.DeckID, &deck.AuthorID, &deck.Deckname, &cardID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if n := len(decks); n == 0 || decks[n-1].DeckID != deck.DeckID {
			deck.DeckArray = make([]int64, 0, 8)
			decks = append(decks, deck)
		}

		if cardID.Valid {
			last := &decks[len(decks)-1]
			last.DeckArray = append(last.DeckArray, cardID.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return decks, nil
}
