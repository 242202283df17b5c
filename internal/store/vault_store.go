// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// Keys of the persisted layout.
const (
	KeyNotes   = "secureNotes"
	KeyFolders = "folders"
	KeyTheme   = "theme"
)

type vaultStore struct {
	kv     KeyValueStorage
	logger *logger.Logger
}

// NewVaultStore wraps kv with the vault key layout.
func NewVaultStore(kv KeyValueStorage, logger *logger.Logger) VaultStore {
	return &vaultStore{
		kv:     kv,
		logger: logger,
	}
}

func (v *vaultStore) SaveBlob(ctx context.Context, ciphertext string) error {
	if err := v.kv.Set(ctx, KeyNotes, ciphertext); err != nil {
		v.logger.Err(err).Str("func", "vaultStore.SaveBlob").Msg("error saving note blob")
		return fmt.Errorf("%w: save notes: %w", ErrStorage, err)
	}
	return nil
}

func (v *vaultStore) LoadBlob(ctx context.Context) (string, bool, error) {
	blob, found, err := v.kv.Get(ctx, KeyNotes)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultStore.LoadBlob").Msg("error loading note blob")
		return "", false, fmt.Errorf("%w: load notes: %w", ErrStorage, err)
	}
	return blob, found, nil
}

func (v *vaultStore) SaveFolders(ctx context.Context, folders []string) error {
	if folders == nil {
		folders = []string{}
	}

	payload, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("%w: encode folders: %w", ErrStorage, err)
	}

	if err = v.kv.Set(ctx, KeyFolders, string(payload)); err != nil {
		v.logger.Err(err).Str("func", "vaultStore.SaveFolders").Msg("error saving folders")
		return fmt.Errorf("%w: save folders: %w", ErrStorage, err)
	}
	return nil
}

func (v *vaultStore) LoadFolders(ctx context.Context) ([]string, error) {
	raw, found, err := v.kv.Get(ctx, KeyFolders)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultStore.LoadFolders").Msg("error loading folders")
		return nil, fmt.Errorf("%w: load folders: %w", ErrStorage, err)
	}
	if !found || raw == "" {
		return []string{}, nil
	}

	var folders []string
	if err = json.Unmarshal([]byte(raw), &folders); err != nil {
		v.logger.Err(err).Str("func", "vaultStore.LoadFolders").Msg("folder document is corrupt")
		return nil, fmt.Errorf("%w: decode folders: %w", ErrStorage, err)
	}
	if folders == nil {
		folders = []string{}
	}

	return folders, nil
}

func (v *vaultStore) SaveTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	if err := v.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		v.logger.Err(err).Str("func", "vaultStore.SaveTheme").Msg("error saving theme")
		return fmt.Errorf("%w: save theme: %w", ErrStorage, err)
	}
	return nil
}

func (v *vaultStore) LoadTheme(ctx context.Context) (models.Theme, error) {
	raw, found, err := v.kv.Get(ctx, KeyTheme)
	if err != nil {
		v.logger.Err(err).Str("func", "vaultStore.LoadTheme").Msg("error loading theme")
		return "", fmt.Errorf("%w: load theme: %w", ErrStorage, err)
	}
	if !found {
		return models.DefaultTheme, nil
	}

	theme := models.Theme(raw)
	if !theme.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return theme, nil
}

func (v *vaultStore) Close() error {
	return v.kv.Close()
}
