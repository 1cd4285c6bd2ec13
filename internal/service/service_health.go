package service

import (
	"context"

	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/store"
	"github.com/MKhiriev/go-card-keeper/models"
)

const (
	databaseUp   = "up"
	databaseDown = "down"
)

// healthService reports the reachability of the database.
type healthService struct {
	pinger         store.Pinger
	appInfoService AppInfoService

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, appInfoService AppInfoService, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:         pinger,
		appInfoService: appInfoService,
		logger:         logger,
	}
}

// Check pings the database under ctx. A nil pinger counts as unreachable.
func (h *healthService) Check(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:   models.HealthStatusHealthy,
		Database: databaseUp,
		Version:  h.appInfoService.GetAppVersion(ctx),
	}

	if h.pinger == nil {
		status.Status, status.Database = models.HealthStatusUnhealthy, databaseDown
		return status
	}

	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		status.Status, status.Database = models.HealthStatusUnhealthy, databaseDown
	}

	return status
}
