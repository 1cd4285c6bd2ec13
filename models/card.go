package models

// Card is a single collectible card together with its play statistics.
//
// Name and Rarity are fixed once the card is stored; only the numeric
// statistics may be changed by an update.
type Card struct {
	// ID is assigned by storage on creation. Zero means "not persisted yet".
	ID int64 `json:"id"`

	// Name is unique across all cards.
	Name string `json:"name"`

	// Rarity is a free-form label (e.g. "Common", "Rare", "Legendary").
	Rarity string `json:"rarity"`

	// PercentInDecks is the share of tracked decks that include this card.
	PercentInDecks float64 `json:"percentInDecks"`

	// CopiesInDecks is the average number of copies per deck that runs it.
	CopiesInDecks float64 `json:"copiesInDecks"`

	// DeckWinRate is the win rate of decks this card is in.
	DeckWinRate float64 `json:"deckWinRate"`

	// TimesPlayed is how many times the card has been played.
	TimesPlayed float64 `json:"timesPlayed"`

	// PlayedWinRate is the win rate of games in which the card was played.
	PlayedWinRate float64 `json:"playedWinRate"`
}
