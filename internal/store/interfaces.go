package store

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-vault/models"
)

// KeyValueStorage is the durable string-to-string surface the vault lives in.
// A Set either fully replaces the value for key or leaves the old value in
// place.
type KeyValueStorage interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// VaultStore persists the encrypted note blob, the plaintext folder list, and
// the theme preference under fixed keys of a [KeyValueStorage].
// All storage failures are wrapped with ErrStorage.
type VaultStore interface {
	// SaveBlob overwrites the encrypted note collection.
	SaveBlob(ctx context.Context, ciphertext string) error
	// LoadBlob returns the encrypted note collection. found is false on first
	// run.
	LoadBlob(ctx context.Context) (ciphertext string, found bool, err error)

	// SaveFolders overwrites the folder list.
	SaveFolders(ctx context.Context, folders []string) error
	// LoadFolders returns the folder list, empty when nothing is stored.
	LoadFolders(ctx context.Context) ([]string, error)

	// SaveTheme stores the theme. Unknown themes return ErrInvalidTheme.
	SaveTheme(ctx context.Context, theme models.Theme) error
	// LoadTheme returns the stored theme or [models.DefaultTheme].
	LoadTheme(ctx context.Context) (models.Theme, error)

	Close() error
}
