package tui

import (
	"github.com/MKhiriev/go-note-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageUnlock = "unlock"
	pageNotes  = "notes"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// lockedMsg opens the unlock page with a reason line.
type lockedMsg struct {
	reason string
}

type sessionTickMsg struct{}

type unlockResultMsg struct {
	err error
}

type notesLoadedMsg struct {
	notes   []models.Note
	folders []string
	err     error
}

type editStartedMsg struct {
	note  models.Note
	isNew bool
	err   error
}

type editCancelledMsg struct{}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type folderAddedMsg struct {
	name  string
	added bool
	err   error
}

type copiedMsg struct {
	err error
}

type exportedMsg struct {
	path string
	err  error
}

type themeChangedMsg struct {
	theme models.Theme
	err   error
}
