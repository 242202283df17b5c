package service

import (
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
)

// Services groups everything the presentation layers call. Notes and Session
// are the same [Vault].
type Services struct {
	Notes       NoteRepository
	Session     SessionController
	Preferences PreferencesService
	AppInfo     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	cipher := crypto.NewCipher(crypto.Argon2Params{
		Time:      cfg.Crypto.ArgonTime,
		MemoryKiB: cfg.Crypto.ArgonMemoryKiB,
		Threads:   cfg.Crypto.ArgonThreads,
	})

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	vault := NewVault(storages.VaultStore, cipher, validators.NewNoteValidator(), logger)

	return &Services{
		Notes:       vault,
		Session:     vault,
		Preferences: NewPreferencesService(storages.VaultStore, logger),
		AppInfo:     appInfo,
	}, nil
}
