package http

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/models"
)

// ---- Mock: CardService ----

type mockCardService struct {
	getAllFn      func(ctx context.Context) ([]models.Card, error)
	getByIDFn     func(ctx context.Context, id int64) (models.Card, error)
	getByRarityFn func(ctx context.Context, rarity string) ([]models.Card, error)
	getByNameFn   func(ctx context.Context, name string) (models.Card, error)
	getByKeyFn    func(ctx context.Context, query map[string]any) (models.Card, error)
	addFn         func(ctx context.Context, card models.Card) (models.Card, error)
	updateFn      func(ctx context.Context, card models.Card) (models.Card, error)
	deleteFn      func(ctx context.Context, payload map[string]any) (bool, error)
}

func (m *mockCardService) GetAllCards(ctx context.Context) ([]models.Card, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}
func (m *mockCardService) GetCardByID(ctx context.Context, id int64) (models.Card, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Card{}, nil
}
func (m *mockCardService) GetCardsByRarity(ctx context.Context, rarity string) ([]models.Card, error) {
	if m.getByRarityFn != nil {
		return m.getByRarityFn(ctx, rarity)
	}
	return nil, nil
}
func (m *mockCardService) GetCardByName(ctx context.Context, name string) (models.Card, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return models.Card{}, nil
}
func (m *mockCardService) GetCardByUniqueKey(ctx context.Context, query map[string]any) (models.Card, error) {
	if m.getByKeyFn != nil {
		return m.getByKeyFn(ctx, query)
	}
	return models.Card{}, nil
}
func (m *mockCardService) AddNewCard(ctx context.Context, card models.Card) (models.Card, error) {
	if m.addFn != nil {
		return m.addFn(ctx, card)
	}
	return card, nil
}
func (m *mockCardService) UpdateCard(ctx context.Context, card models.Card) (models.Card, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, card)
	}
	return card, nil
}
func (m *mockCardService) DeleteCard(ctx context.Context, payload map[string]any) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, payload)
	}
	return true, nil
}

// ---- Mock: UserService ----

type mockUserService struct {
	getAllFn         func(ctx context.Context) ([]models.User, error)
	getByIDFn        func(ctx context.Context, id int64) (models.User, error)
	getByKeyFn       func(ctx context.Context, query map[string]any) (models.User, error)
	getByUsernameFn  func(ctx context.Context, username string) (models.User, error)
	getByCredentials func(ctx context.Context, username, password string) (models.User, error)
	addFn            func(ctx context.Context, user models.User) (models.User, error)
	updateFn         func(ctx context.Context, user models.User) (models.User, error)
	deleteFn         func(ctx context.Context, payload map[string]any) (bool, error)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}
func (m *mockUserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.User{}, nil
}
func (m *mockUserService) GetUserByUniqueKey(ctx context.Context, query map[string]any) (models.User, error) {
	if m.getByKeyFn != nil {
		return m.getByKeyFn(ctx, query)
	}
	return models.User{}, nil
}
func (m *mockUserService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}
func (m *mockUserService) GetUserByCredentials(ctx context.Context, username, password string) (models.User, error) {
	if m.getByCredentials != nil {
		return m.getByCredentials(ctx, username, password)
	}
	return models.User{}, nil
}
func (m *mockUserService) AddNewUser(ctx context.Context, user models.User) (models.User, error) {
	if m.addFn != nil {
		return m.addFn(ctx, user)
	}
	return user, nil
}
func (m *mockUserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}
func (m *mockUserService) DeleteUser(ctx context.Context, payload map[string]any) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, payload)
	}
	return true, nil
}
func (m *mockUserService) IsUsernameAvailable(_ context.Context, _ string) (bool, error) {
	return true, nil
}
func (m *mockUserService) IsEmailAvailable(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// ---- Mock: DeckService ----

type mockDeckService struct {
	getAllFn      func(ctx context.Context) ([]models.Deck, error)
	getByIDFn     func(ctx context.Context, id int64) (models.Deck, error)
	getByAuthorFn func(ctx context.Context, authorID int64) ([]models.Deck, error)
	getByNameFn   func(ctx context.Context, name string) ([]models.Deck, error)
	getByKeyFn    func(ctx context.Context, query map[string]any) ([]models.Deck, error)
	addFn         func(ctx context.Context, deck models.Deck) (models.Deck, error)
	updateFn      func(ctx context.Context, deck models.Deck) (models.Deck, error)
	deleteFn      func(ctx context.Context, payload map[string]any) (bool, error)
}

func (m *mockDeckService) GetAllDecks(ctx context.Context) ([]models.Deck, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}
func (m *mockDeckService) GetDeckByID(ctx context.Context, id int64) (models.Deck, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.Deck{}, nil
}
func (m *mockDeckService) GetDecksByAuthorID(ctx context.Context, authorID int64) ([]models.Deck, error) {
	if m.getByAuthorFn != nil {
		return m.getByAuthorFn(ctx, authorID)
	}
	return nil, nil
}
func (m *mockDeckService) GetDecksByName(ctx context.Context, name string) ([]models.Deck, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, nil
}
func (m *mockDeckService) GetDeckByUniqueKey(ctx context.Context, query map[string]any) ([]models.Deck, error) {
	if m.getByKeyFn != nil {
		return m.getByKeyFn(ctx, query)
	}
	return nil, nil
}
func (m *mockDeckService) AddNewDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	if m.addFn != nil {
		return m.addFn(ctx, deck)
	}
	return deck, nil
}
func (m *mockDeckService) UpdateDeck(ctx context.Context, deck models.Deck) (models.Deck, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, deck)
	}
	return deck, nil
}
func (m *mockDeckService) DeleteDeck(ctx context.Context, payload map[string]any) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, payload)
	}
	return true, nil
}

// ---- Mock: AuthService ----

type mockAuthService struct {
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
}
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Mock: HealthService ----

type mockHealthService struct {
	status models.HealthStatus
}

func (m *mockHealthService) Check(_ context.Context) models.HealthStatus {
	return m.status
}
