package store

import (
	"fmt"

	"github.com/MKhiriev/go-card-keeper/models"
)

const (
	cardsTable    = "cards"
	decksTable    = "decks"
	deckCardTable = "deck_card"
)

var usersTable = models.User{}.TableName()

// Entity property names (JSON) mapped to storage columns. Properties missing
// from a map, such as a deck's "deckArray", cannot be used as lookup keys.
var (
	cardColumns = map[string]string{
		"id":             "id",
		"name":           "card_name",
		"rarity":         "rarity",
		"percentInDecks": "percent_in_decks",
		"copiesInDecks":  "copies_in_decks",
		"deckWinRate":    "deck_winrate",
		"timesPlayed":    "times_played",
		"playedWinRate":  "played_winrate",
	}

	userColumns = map[string]string{
		"id":        "id",
		"username":  "username",
		"firstName": "first_name",
		"lastName":  "last_name",
		"email":     "email",
	}

	deckColumns = map[string]string{
		"deckId":   "d.id",
		"authorId": "d.author_id",
		"deckname": "d.deck_name",
	}
)

// selected column lists, in scan order.
var (
	cardSelectColumns = []string{"id", "card_name", "rarity", "percent_in_decks", "copies_in_decks", "deck_winrate", "times_played", "played_winrate"}
	userSelectColumns = []string{"id", "username", "first_name", "last_name", "email", "password"}
	deckSelectColumns = []string{"d.id", "d.author_id", "d.deck_name", "dc.card_id"}
)

func columnFor(columns map[string]string, key string) (string, error) {
	column, ok := columns[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	return column, nil
}
