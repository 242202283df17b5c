package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-vault/internal/adapter"
	"github.com/MKhiriev/go-note-vault/internal/client"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/tui"
	"github.com/MKhiriev/go-note-vault/internal/workers"
	"github.com/MKhiriev/go-note-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "note-vault-client"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger(role, cfg.App.LogFile, cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	var (
		services  *service.Services
		storages  *store.Storages
		bgWorkers *workers.Workers
	)

	if cfg.Client.RemoteAddress != "" {
		// the server owns the vault and its auto-lock
		services, err = adapter.NewRemoteServices(cfg.Client, cfg.Server.RequestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create remote services")
		}
	} else {
		storages, err = store.NewStorages(context.Background(), cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create storage")
		}
		defer storages.Close()

		services, err = service.NewServices(storages, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create services")
		}

		bgWorkers = workers.NewWorkers(cfg.Workers, services.Session, log)
	}

	ui, err := tui.New(services, cfg.Export, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, bgWorkers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		if storages != nil {
			storages.Close()
		}
		os.Exit(1)
	}
}
