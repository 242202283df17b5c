package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/handler"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer binds the HTTP listener immediately so address errors surface
// before RunServer. workers may be nil.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.HTTPAddress, err)
	}

	return &server{
		httpServer: httpSrv,
		workers:    bgWorkers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run(context.Background())
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) Addr() string {
	return s.httpServer.Addr()
}

// run serves until parent is cancelled or a stop signal arrives, then shuts
// the HTTP server down and waits for the workers to return.
func (s *server) run(parent context.Context) {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(ctx)
		}
	}()

	serveDone := make(chan struct{})
	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")
	go func() {
		defer close(serveDone)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveDone
	case <-serveDone:
		stop()
	}

	<-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")
}
