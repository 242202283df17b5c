package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// Storages groups the storage layer handed to the services.
type Storages struct {
	// VaultStore holds the encrypted notes, folders and theme.
	VaultStore VaultStore
}

// Close releases the backend connection.
func (s *Storages) Close() error {
	return s.VaultStore.Close()
}

// NewStorages opens the backend named by cfg.Backend:
//   - memory: an in-process map;
//   - file:   a JSON document at cfg.Path, replaced atomically on write;
//   - sqlite: a database at cfg.Path, migrated on open.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	kv, err := newKeyValueStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		VaultStore: NewVaultStore(kv, logger),
	}, nil
}

func newKeyValueStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) (KeyValueStorage, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	case config.BackendFile:
		kv, err := NewFileStorage(cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		return kv, nil
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStorage(db, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
