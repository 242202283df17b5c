package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// appInfoService reports the build the vault is running, for /api/version
// and the about window.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with [ErrVersionIsNotSpecified] for a blank
// version; both binaries fill it from the build before calling.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Msg("app version resolved")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
