package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = NewAppInfoService(config.App{Version: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	svc, err := NewAppInfoService(config.App{Version: " 1.2.3\n"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestNewServices(t *testing.T) {
	storages := &store.Storages{VaultStore: store.NewVaultStore(store.NewMemoryStorage(), logger.Nop())}
	cfg := &config.StructuredConfig{
		App:    config.App{Version: "dev"},
		Crypto: config.Crypto{ArgonTime: 1, ArgonMemoryKiB: 64, ArgonThreads: 1},
	}

	services, err := NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)
	assert.Same(t, services.Notes, services.Session)
	assert.Equal(t, Locked, services.Session.State())

	_, err = NewServices(storages, &config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
