package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/export"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notesMode int

const (
	modeList notesMode = iota
	modeDetail
	modeForm
	modeFolder
	modeConfirmDelete
)

const (
	statusSaved        = "Note saved."
	statusDeleted      = "Note deleted."
	statusFolderAdded  = "Folder added."
	statusFolderExists = "Folder already exists."
	statusCopied       = "Note copied to clipboard."
)

// NotesModel is the main page: the note list with its folder filter, the
// note detail, the note form, folder creation, and delete confirmation.
type NotesModel struct {
	ctx        context.Context
	services   *service.Services
	clipboard  Clipboard
	dateLayout string
	exportDir  string
	palette    *palette

	notes   []models.Note
	folders []string
	folder  string
	idx     int
	loading bool

	mode        notesMode
	form        noteForm
	folderInput textinput.Model

	status string
	errMsg string
}

func NewNotesModel(ctx context.Context, services *service.Services, cb Clipboard, dateLayout, exportDir string, p *palette) *NotesModel {
	folderInput := textinput.New()
	folderInput.Placeholder = "folder name"
	folderInput.CharLimit = 64
	folderInput.Width = 40

	return &NotesModel{
		ctx:         ctx,
		services:    services,
		clipboard:   cb,
		dateLayout:  dateLayout,
		exportDir:   exportDir,
		palette:     p,
		folderInput: folderInput,
		loading:     true,
	}
}

func (m *NotesModel) Init() tea.Cmd {
	m.loading = true
	m.mode = modeList
	return m.cmdLoad()
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrLocked) {
				return m, navigate(pageUnlock, lockedMsg{reason: app.MsgVaultLocked})
			}
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.notes = msg.notes
		m.folders = msg.folders
		m.idx = min(max(m.idx, 0), max(len(m.notes)-1, 0))
		return m, nil
	case editStartedMsg:
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		if msg.isNew {
			m.form = newNoteForm(nil, m.folders)
		} else {
			m.form = newNoteForm(&msg.note, m.folders)
		}
		m.errMsg = ""
		m.mode = modeForm
		return m, textinput.Blink
	case editCancelledMsg:
		m.mode = modeList
		return m, nil
	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.setStatus(statusSaved)
		return m, m.cmdLoad()
	case noteDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.setStatus(statusDeleted)
		return m, m.cmdLoad()
	case folderAddedMsg:
		m.mode = modeList
		m.folderInput.Reset()
		m.folderInput.Blur()
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		if msg.added {
			m.setStatus(statusFolderAdded)
		} else {
			m.setStatus(statusFolderExists)
		}
		return m, m.cmdLoad()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgClipboardUnavailable
			return m, nil
		}
		m.setStatus(statusCopied)
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.setStatus("Exported to " + msg.path)
		return m, nil
	case themeChangedMsg:
		if msg.err != nil {
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.palette.set(msg.theme)
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeFolder:
		return m.updateFolder(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateList(keyMsg)
	}
}

func (m *NotesModel) setStatus(s string) {
	m.status = s
	m.errMsg = ""
}

func (m *NotesModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m *NotesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.mode = modeDetail
		}
	case key.Matches(msg, keys.newNote):
		return m, m.cmdStartNew()
	case key.Matches(msg, keys.edit):
		if note, ok := m.current(); ok {
			return m, m.cmdBeginEdit(note.ID)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.mode = modeConfirmDelete
		}
	case key.Matches(msg, keys.copy):
		if note, ok := m.current(); ok {
			return m, m.cmdCopy(note)
		}
	case key.Matches(msg, keys.exportAll):
		return m, m.cmdExportAll()
	case key.Matches(msg, keys.folder):
		m.folder = nextFolder(m.folders, m.folder)
		m.idx = 0
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.addFolder):
		m.mode = modeFolder
		m.folderInput.Reset()
		m.folderInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.theme):
		return m, m.cmdToggleTheme()
	case key.Matches(msg, keys.lock):
		m.services.Session.Lock()
		m.notes = nil
		m.folder = ""
		m.idx = 0
		m.status = ""
		m.errMsg = ""
		return m, navigate(pageUnlock, lockedMsg{reason: app.MsgVaultLocked})
	}
	return m, nil
}

func (m *NotesModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	switch {
	case key.Matches(msg, keys.esc), !ok:
		m.mode = modeList
	case key.Matches(msg, keys.edit):
		return m, m.cmdBeginEdit(note.ID)
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(note)
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m *NotesModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		if note, ok := m.current(); ok {
			return m, m.cmdDelete(note.ID)
		}
		m.mode = modeList
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m *NotesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, m.cmdCancelEdit()
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			m.form.errMsg = ""
			return m, m.cmdSave(m.form.input())
		case key.Matches(keyMsg, keys.tab):
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.setFocus(m.form.focus - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m *NotesModel) updateFolder(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.folderInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.cmdAddFolder(m.folderInput.Value())
		}
	}

	var cmd tea.Cmd
	m.folderInput, cmd = m.folderInput.Update(msg)
	return m, cmd
}

// nextFolder cycles the filter: all notes, then every folder in order.
func nextFolder(folders []string, current string) string {
	if len(folders) == 0 {
		return ""
	}
	i := slices.Index(folders, current)
	if current == "" || i < 0 {
		return folders[0]
	}
	if i == len(folders)-1 {
		return ""
	}
	return folders[i+1]
}

func (m *NotesModel) View() string {
	switch m.mode {
	case modeForm:
		return m.form.view(m.palette)
	case modeFolder:
		out := "Name │ [" + m.folderInput.View() + "]\n"
		if len(m.folders) > 0 {
			out += "\nExisting: " + strings.Join(m.folders, ", ") + "\n"
		}
		return m.palette.renderPage("NEW FOLDER", strings.TrimRight(out, "\n"), "enter: add │ esc: cancel")
	case modeDetail:
		note, ok := m.current()
		if !ok {
			return m.palette.renderPage("NOTE", "Note not found", "esc: back")
		}
		body := strings.Trim(export.RenderNote(note, -1, m.dateLayout), "\n")
		out := body + "\n\n" + m.palette.feedback(m.status, m.errMsg)
		return m.palette.renderPage("NOTE", strings.TrimRight(out, "\n"), "esc: back │ e: edit │ c: copy │ d: delete")
	case modeConfirmDelete:
		note, _ := m.current()
		out := fmt.Sprintf("Delete note %q?", fitText(note.Text, 40))
		return m.palette.renderPage("DELETE NOTE", out, "y: delete │ n: cancel")
	}

	return m.palette.renderPage(m.listTitle(), strings.TrimRight(m.listBody(), "\n"),
		"n: new │ enter: open │ e: edit │ d: delete │ c: copy │ x: export │ f: folder │ a: add folder │ t: theme │ L: lock │ q: quit")
}

func (m *NotesModel) listTitle() string {
	if m.folder == "" {
		return "NOTES · all"
	}
	return "NOTES · " + m.folder
}

func (m *NotesModel) listBody() string {
	var b strings.Builder
	b.WriteString(m.palette.feedback(m.status, m.errMsg))

	if m.loading {
		b.WriteString("Loading...\n")
		return b.String()
	}
	if len(m.notes) == 0 {
		b.WriteString("No notes\n")
		return b.String()
	}

	b.WriteString("#   │ Text                           │ Folder       │ Date\n")
	b.WriteString("────┼────────────────────────────────┼──────────────┼───────────\n")
	for i, note := range m.notes {
		row := fmt.Sprintf("%-3d │ %-30s │ %-12s │ %s",
			i+1,
			fitText(note.Text, 30),
			fitText(valueOrDash(note.Folder), 12),
			valueOrDash(note.Date),
		)
		if i == m.idx {
			row = m.palette.styles.selected.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}

func (m *NotesModel) cmdLoad() tea.Cmd {
	ctx, notesRepo, folder := m.ctx, m.services.Notes, m.folder
	return func() tea.Msg {
		notes, err := notesRepo.FilterByFolder(ctx, folder)
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		folders, err := notesRepo.Folders(ctx)
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		return notesLoadedMsg{notes: notes, folders: folders}
	}
}

func (m *NotesModel) cmdStartNew() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		session.CancelEdit()
		return editStartedMsg{isNew: true}
	}
}

func (m *NotesModel) cmdBeginEdit(id int64) tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		note, err := session.BeginEdit(ctx, id)
		return editStartedMsg{note: note, err: err}
	}
}

func (m *NotesModel) cmdCancelEdit() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		session.CancelEdit()
		return editCancelledMsg{}
	}
}

func (m *NotesModel) cmdSave(in models.NoteInput) tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		note, err := session.Save(ctx, in)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m *NotesModel) cmdDelete(id int64) tea.Cmd {
	ctx, notesRepo := m.ctx, m.services.Notes
	return func() tea.Msg {
		return noteDeletedMsg{err: notesRepo.Delete(ctx, id)}
	}
}

func (m *NotesModel) cmdAddFolder(name string) tea.Cmd {
	ctx, notesRepo := m.ctx, m.services.Notes
	return func() tea.Msg {
		added, err := notesRepo.AddFolder(ctx, name)
		return folderAddedMsg{name: name, added: added, err: err}
	}
}

func (m *NotesModel) cmdCopy(note models.Note) tea.Cmd {
	text := export.RenderNote(note, -1, m.dateLayout)
	cb := m.clipboard
	return func() tea.Msg {
		return copiedMsg{err: cb.WriteAll(text)}
	}
}

// cmdExportAll writes every note as a txt document into exportDir. The file
// is only created once rendering has succeeded.
func (m *NotesModel) cmdExportAll() tea.Cmd {
	ctx, notesRepo, dir, layout := m.ctx, m.services.Notes, m.exportDir, m.dateLayout
	return func() tea.Msg {
		format, err := export.LookupFormat("txt")
		if err != nil {
			return exportedMsg{err: err}
		}
		notes, err := notesRepo.ListAll(ctx)
		if err != nil {
			return exportedMsg{err: err}
		}

		var buf bytes.Buffer
		if err = export.WriteAll(&buf, notes, layout); err != nil {
			return exportedMsg{err: err}
		}

		path := filepath.Join(dir, format.FileName)
		if err = os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
			return exportedMsg{err: fmt.Errorf("write export file: %w", err)}
		}
		return exportedMsg{path: path}
	}
}

func (m *NotesModel) cmdToggleTheme() tea.Cmd {
	ctx, prefs := m.ctx, m.services.Preferences
	next := models.ThemeDark
	if m.palette.theme == models.ThemeDark {
		next = models.ThemeLight
	}
	return func() tea.Msg {
		return themeChangedMsg{theme: next, err: prefs.SetTheme(ctx, next)}
	}
}
