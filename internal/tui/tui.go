// Package tui is the terminal presentation of the vault, built on bubbletea.
// It calls the core only through the typed service operations.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/export"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionPollInterval is how often the UI notices a session locked by the
// auto-lock worker.
const sessionPollInterval = time.Second

var errNoServices = errors.New("tui: services are required")

type TUI struct {
	services   *service.Services
	buildInfo  models.AppBuildInfo
	dateLayout string
	exportDir  string
	clipboard  Clipboard

	logger *logger.Logger
}

func New(services *service.Services, cfg config.Export, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}

	layout := cfg.DateLayout
	if layout == "" {
		layout = export.DefaultDateLayout
	}

	return &TUI{
		services:   services,
		buildInfo:  buildInfo,
		dateLayout: layout,
		exportDir:  ".",
		clipboard:  systemClipboard{},
		logger:     logger,
	}, nil
}

func (t *TUI) newRootModel(ctx context.Context, theme models.Theme) RootModel {
	p := newPalette(theme)
	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, t.services.Session, p),
		pageNotes:  NewNotesModel(ctx, t.services, t.clipboard, t.dateLayout, t.exportDir, p),
	}
	return NewRootModel(pages, pageUnlock, t.services.Session, p, t.buildInfo, sessionPollInterval)
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	theme, err := t.services.Preferences.Theme(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.Run").Msg("failed to load theme, using default")
		theme = models.DefaultTheme
	}

	root := t.newRootModel(ctx, theme)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.QuitByUser() {
		t.logger.Info().Str("func", "TUI.Run").Msg("quit by user")
	}
	return nil
}
