package service

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/internal/app"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/internal/validators"
	"github.com/MKhiriev/go-card-keeper/models"
)

// cardService is the concrete implementation of CardService.
type cardService struct {
	cardRepository store.CardRepository

	logger *logger.Logger
}

func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

// GetAllCards returns every stored card. An empty store is reported as
// not found.
func (s *cardService) GetAllCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cardRepository.GetAll(ctx)
	if err != nil {
		logFailure(ctx, "*cardService.GetAllCards", err)
		return nil, err
	}

	if !validators.HasData(cards) {
		return nil, app.NewResourceNotFoundError(app.MsgNoCardsFound)
	}

	return cards, nil
}

func (s *cardService) GetCardByID(ctx context.Context, id int64) (models.Card, error) {
	if !validators.IsValidID(id) {
		return models.Card{}, app.NewInvalidInputError(app.MsgInvalidIDInput)
	}

	card, found, err := s.cardRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*cardService.GetCardByID", err)
		return models.Card{}, err
	}
	if !found {
		return models.Card{}, app.NewResourceNotFoundError(app.MsgCardIDNotFound)
	}

	return card, nil
}

func (s *cardService) GetCardsByRarity(ctx context.Context, rarity string) ([]models.Card, error) {
	if !validators.IsValidString(rarity) {
		return nil, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	cards, err := s.cardRepository.GetByRarity(ctx, rarity)
	if err != nil {
		logFailure(ctx, "*cardService.GetCardsByRarity", err)
		return nil, err
	}
	if !validators.HasData(cards) {
		return nil, app.NewResourceNotFoundError(app.MsgRarityNotFound)
	}

	return cards, nil
}

func (s *cardService) GetCardByName(ctx context.Context, name string) (models.Card, error) {
	if !validators.IsValidString(name) {
		return models.Card{}, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	card, found, err := s.cardRepository.GetByName(ctx, name)
	if err != nil {
		logFailure(ctx, "*cardService.GetCardByName", err)
		return models.Card{}, err
	}
	if !found {
		return models.Card{}, app.NewResourceNotFoundError(app.MsgCardNameNotFound)
	}

	return card, nil
}

// GetCardByUniqueKey delegates "id" lookups to GetCardByID. Any other key
// must name a card property and carry a non-empty string value.
func (s *cardService) GetCardByUniqueKey(ctx context.Context, query map[string]any) (models.Card, error) {
	key, value, err := singleEntry(query)
	if err != nil {
		return models.Card{}, err
	}

	if !validators.IsPropertyOf(key, models.Card{}) {
		return models.Card{}, app.NewInvalidInputError(app.MsgUnknownQueryKey)
	}

	if key == "id" {
		id, err := validators.ParseID(value)
		if err != nil {
			return models.Card{}, app.NewInvalidInputError(app.MsgInvalidIDInput)
		}
		return s.GetCardByID(ctx, id)
	}

	if !validators.IsValidString(value) {
		return models.Card{}, app.NewInvalidInputError(app.MsgValidStringNotInput)
	}

	card, found, err := s.cardRepository.GetByUniqueKey(ctx, key, value)
	if err != nil {
		logFailure(ctx, "*cardService.GetCardByUniqueKey", err)
		return models.Card{}, err
	}
	if !found {
		return models.Card{}, app.NewResourceNotFoundError("")
	}

	return card, nil
}

// AddNewCard validates card (the id may be zero), rejects a name already in
// use and persists the card.
func (s *cardService) AddNewCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	if !validators.IsValidObject(card, "id") {
		return models.Card{}, app.NewInvalidInputError(app.MsgInvalidCardObject)
	}

	taken, err := s.cardRepository.ExistsByUniqueKey(ctx, "name", card.Name)
	if err != nil {
		logFailure(ctx, "*cardService.AddNewCard", err)
		return models.Card{}, err
	}
	if taken {
		return models.Card{}, app.NewResourceConflictError(app.MsgCardAlreadyExists)
	}

	saved, err := s.cardRepository.Save(ctx, card)
	if err != nil {
		logFailure(ctx, "*cardService.AddNewCard", err)
		return models.Card{}, err
	}

	log.Info().Str("func", "*cardService.AddNewCard").Int64("card_id", saved.ID).Msg("card added")
	return saved, nil
}

// UpdateCard overwrites the statistics of an existing card. Name and rarity
// must match the stored card.
func (s *cardService) UpdateCard(ctx context.Context, card models.Card) (models.Card, error) {
	if !validators.IsValidID(card.ID) || !validators.IsValidObject(card, "id") {
		return models.Card{}, app.NewInvalidInputError(app.MsgInvalidCardUpdate)
	}

	existing, found, err := s.cardRepository.GetByID(ctx, card.ID)
	if err != nil {
		logFailure(ctx, "*cardService.UpdateCard", err)
		return models.Card{}, err
	}
	if !found {
		return models.Card{}, app.NewResourceNotFoundError(app.MsgCardNotFoundUpdate)
	}

	if existing.Name != card.Name || existing.Rarity != card.Rarity {
		return models.Card{}, app.NewResourceConflictError(app.MsgCardImmutableFields)
	}

	updated, err := s.cardRepository.Update(ctx, card)
	if err != nil {
		logFailure(ctx, "*cardService.UpdateCard", err)
		return models.Card{}, err
	}

	return updated, nil
}

func (s *cardService) DeleteCard(ctx context.Context, payload map[string]any) (bool, error) {
	id, err := payloadID(payload)
	if err != nil {
		return false, err
	}

	_, found, err := s.cardRepository.GetByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*cardService.DeleteCard", err)
		return false, err
	}
	if !found {
		return false, app.NewResourceNotFoundError(app.MsgCardNotFoundDelete)
	}

	deleted, err := s.cardRepository.DeleteByID(ctx, id)
	if err != nil {
		logFailure(ctx, "*cardService.DeleteCard", err)
		return false, err
	}

	logger.FromContext(ctx).Info().Str("func", "*cardService.DeleteCard").Int64("card_id", id).Msg("card deleted")
	return deleted, nil
}
