package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingKV fails every call with err.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error         { return f.err }
func (f failingKV) Close() error                                      { return nil }

func TestVaultStore_Blob(t *testing.T) {
	ctx := context.Background()
	vs := NewVaultStore(NewMemoryStorage(), logger.Nop())

	_, found, err := vs.LoadBlob(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, vs.SaveBlob(ctx, "cipher"))
	blob, found, err := vs.LoadBlob(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "cipher", blob)
}

func TestVaultStore_Folders(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	vs := NewVaultStore(kv, logger.Nop())

	folders, err := vs.LoadFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, folders)

	require.NoError(t, vs.SaveFolders(ctx, nil))
	raw, _, _ := kv.Get(ctx, KeyFolders)
	assert.Equal(t, "[]", raw)

	require.NoError(t, vs.SaveFolders(ctx, []string{"Work", "Home"}))
	folders, err = vs.LoadFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Home"}, folders)

	require.NoError(t, kv.Set(ctx, KeyFolders, "null"))
	folders, err = vs.LoadFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, folders)

	require.NoError(t, kv.Set(ctx, KeyFolders, `{"oops":1}`))
	_, err = vs.LoadFolders(ctx)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestVaultStore_Theme(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStorage()
	vs := NewVaultStore(kv, logger.Nop())

	theme, err := vs.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	require.NoError(t, vs.SaveTheme(ctx, models.ThemeDark))
	theme, err = vs.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)

	assert.ErrorIs(t, vs.SaveTheme(ctx, "solarized"), ErrInvalidTheme)

	require.NoError(t, kv.Set(ctx, KeyTheme, "blue"))
	_, err = vs.LoadTheme(ctx)
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestVaultStore_WrapsStorageErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("disk full")
	vs := NewVaultStore(failingKV{err: cause}, logger.Nop())

	checks := map[string]error{
		"SaveBlob":    vs.SaveBlob(ctx, "x"),
		"SaveFolders": vs.SaveFolders(ctx, []string{"a"}),
		"SaveTheme":   vs.SaveTheme(ctx, models.ThemeDark),
	}
	_, _, checks["LoadBlob"] = vs.LoadBlob(ctx)
	_, checks["LoadFolders"] = vs.LoadFolders(ctx)
	_, checks["LoadTheme"] = vs.LoadTheme(ctx)

	for name, err := range checks {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, err, ErrStorage)
			assert.ErrorIs(t, err, cause)
		})
	}
}
