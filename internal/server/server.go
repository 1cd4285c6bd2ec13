package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/handler"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	mu      sync.Mutex
	stop    context.CancelFunc
	stopped bool
}

// NewServer wires the HTTP router into a listener on cfg.HTTPAddress.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("configuring card-keeper server")
	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return
	}
	s.logger.Info().Msg("server stopped")
}

// Shutdown cancels the running serve loop, which then drains in-flight
// requests. Called before RunServer it makes RunServer return right away.
func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.stop != nil {
		s.stop()
	}
}

// run serves until ctx is done, Shutdown is called or the listener fails,
// then drains in-flight requests. A listener failure is returned.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.stop = cancel
	if s.stopped {
		cancel()
	}
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.httpServer.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		s.httpServer.Shutdown()
		return nil
	})

	return g.Wait()
}
