package service

import (
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
)

type Services struct {
	CardService    CardService
	UserService    UserService
	DeckService    DeckService
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(repositories *store.Repositories, pinger store.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CardService:    NewCardService(repositories.CardRepository, logger),
		UserService:    NewUserService(repositories.UserRepository, logger),
		DeckService:    NewDeckService(repositories.DeckRepository, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(pinger, appInfoService, logger),
	}, nil
}
