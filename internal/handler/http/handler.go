package http

import (
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/export"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/utils"
)

type Handler struct {
	services *service.Services

	dateLayout     string
	requestTimeout time.Duration
	listenHost     string
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:   services,
		dateLayout: export.DefaultDateLayout,
		traceIDs:   utils.NewUUIDGenerator(),
		logger:     logger,
	}
	if cfg != nil {
		if cfg.Export.DateLayout != "" {
			h.dateLayout = cfg.Export.DateLayout
		}
		h.requestTimeout = cfg.Server.RequestTimeout
		h.listenHost = hostname(cfg.Server.HTTPAddress)
	}

	logger.Info().Msg("http handler created")
	return h
}
