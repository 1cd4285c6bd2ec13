// Command healthcheck probes GET /health of a running card-keeper server
// and exits 0 when it reports healthy, 1 otherwise. It is meant for
// container HEALTHCHECK instructions and reads the server configuration.
package main

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/fatih/color"
)

const probeTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("healthcheck", "warn")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 1
	}

	api, err := adapter.NewHTTPAdapter(cfg.Server.HTTPAddress, probeTimeout, log)
	if err != nil {
		log.Err(err).Msg("error creating adapter")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	status, err := api.Health(ctx)
	if err != nil {
		color.Red("UNREACHABLE %s: %v", cfg.Server.HTTPAddress, err)
		return 1
	}

	if !status.IsHealthy() {
		color.Red("%s database=%s version=%s", status.Status, status.Database, status.Version)
		return 1
	}

	color.Green("%s database=%s version=%s", status.Status, status.Database, status.Version)
	return 0
}
