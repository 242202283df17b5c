package service

import (
	"context"
	"slices"
	"strings"
)

// AddFolder implements [NoteRepository]. It works while locked: folder names
// are stored unencrypted.
func (v *Vault) AddFolder(ctx context.Context, name string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	if err := v.loadFolders(ctx); err != nil {
		return false, err
	}
	if slices.Contains(v.folders, name) {
		return false, nil
	}

	next := append(slices.Clone(v.folders), name)
	if err := v.store.SaveFolders(ctx, next); err != nil {
		return false, err
	}
	v.folders = next
	v.touch()

	v.logger.Debug().Str("func", "Vault.AddFolder").Int("folders", len(next)).Msg("folder added")

	return true, nil
}

// Folders implements [NoteRepository].
func (v *Vault) Folders(ctx context.Context) ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err := v.loadFolders(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(v.folders), nil
}

// loadFolders reads the folder list once. Requires v.mu.
func (v *Vault) loadFolders(ctx context.Context) error {
	if v.foldersLoaded {
		return nil
	}

	folders, err := v.store.LoadFolders(ctx)
	if err != nil {
		return err
	}
	v.folders = folders
	v.foldersLoaded = true
	return nil
}
