package tui

import (
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	help     lipgloss.Style
	err      lipgloss.Style
	status   lipgloss.Style
	selected lipgloss.Style
	overlay  lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	fg, accent, danger := lipgloss.Color("235"), lipgloss.Color("63"), lipgloss.Color("160")
	if theme == models.ThemeDark {
		fg, accent, danger = lipgloss.Color("252"), lipgloss.Color("213"), lipgloss.Color("203")
	}

	return styles{
		app:      lipgloss.NewStyle().Padding(1, 2).Foreground(fg),
		title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		help:     lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Bold(true).Foreground(danger),
		status:   lipgloss.NewStyle().Foreground(accent),
		selected: lipgloss.NewStyle().Bold(true),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
	}
}

// palette is shared by all pages so a theme switch restyles the whole UI.
type palette struct {
	theme  models.Theme
	styles styles
}

func newPalette(theme models.Theme) *palette {
	p := &palette{}
	p.set(theme)
	return p
}

func (p *palette) set(theme models.Theme) {
	if !theme.Valid() {
		theme = models.DefaultTheme
	}
	p.theme = theme
	p.styles = newStyles(theme)
}
