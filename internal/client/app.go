package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/workers"
)

var errMissingDependency = errors.New("client: missing dependency")

type App struct {
	session service.SessionController
	ui      UI
	workers *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.Services, ui UI, bgWorkers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil || ui == nil {
		return nil, errMissingDependency
	}

	return &App{
		session: services.Session,
		ui:      ui,
		workers: bgWorkers,
		logger:  logger,
	}, nil
}

func (a *App) Run() error {
	return a.run(context.Background())
}

// run blocks until the UI returns or a stop signal arrives. The vault is
// locked on the way out whatever the reason.
func (a *App) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if a.workers != nil {
			a.workers.Run(ctx)
		}
	}()

	err := a.ui.Run(ctx)

	stop()
	<-workersDone
	a.session.Lock()

	a.logger.Info().Str("func", "App.run").Msg("client stopped")
	return err
}
