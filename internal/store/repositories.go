package store

import "github.com/MKhiriev/go-card-keeper/internal/logger"

// Repositories groups every repository built on a single [DB].
type Repositories struct {
	CardRepository CardRepository
	UserRepository UserRepository
	DeckRepository DeckRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		CardRepository: NewCardRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
		DeckRepository: NewDeckRepository(db, logger),
	}
}
