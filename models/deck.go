package models

// Deck is a named, ordered list of card references built by one author.
//
// DeckArray is a multiset: the same card id may appear several times, and
// the order in which ids were supplied is the order in which they are
// returned. No author may own two decks with the same Deckname.
type Deck struct {
	// DeckID is assigned by storage on creation. Zero means "not persisted yet".
	DeckID int64 `json:"deckId"`

	// AuthorID references the [User] that owns the deck.
	AuthorID int64 `json:"authorId"`

	Deckname string `json:"deckname"`

	// DeckArray holds [Card] ids in insertion order.
	DeckArray []int64 `json:"deckArray"`
}
