package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
)

type preferencesService struct {
	store  store.VaultStore
	logger *logger.Logger
}

func NewPreferencesService(vaultStore store.VaultStore, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		store:  vaultStore,
		logger: logger,
	}
}

// Theme returns the stored theme. A corrupt stored value falls back to the
// default instead of failing the caller.
func (p *preferencesService) Theme(ctx context.Context) (models.Theme, error) {
	theme, err := p.store.LoadTheme(ctx)
	if errors.Is(err, store.ErrInvalidTheme) {
		p.logger.Warn().Err(err).Str("func", "preferencesService.Theme").Msg("stored theme is invalid, using default")
		return models.DefaultTheme, nil
	}
	return theme, err
}

func (p *preferencesService) SetTheme(ctx context.Context, theme models.Theme) error {
	err := p.store.SaveTheme(ctx, theme)
	if errors.Is(err, store.ErrInvalidTheme) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
