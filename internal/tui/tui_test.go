package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/config"
	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/internal/validators"
	"github.com/MKhiriev/go-note-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestServices(t *testing.T) *service.Services {
	t.Helper()

	log := logger.Nop()
	vaultStore := store.NewVaultStore(store.NewMemoryStorage(), log)
	cipher := crypto.NewCipher(crypto.Argon2Params{Time: 1, MemoryKiB: 64, Threads: 1})
	vault := service.NewVault(vaultStore, cipher, validators.NewNoteValidator(), log)

	return &service.Services{
		Notes:       vault,
		Session:     vault,
		Preferences: service.NewPreferencesService(vaultStore, log),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd synchronously and returns the message it produces.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

type notesFixture struct {
	services  *service.Services
	clipboard *fakeClipboard
	model     *NotesModel
	dir       string
}

func newNotesFixture(t *testing.T) *notesFixture {
	t.Helper()

	services := newTestServices(t)
	_, err := services.Session.Unlock(context.Background(), "p1")
	require.NoError(t, err)

	cb := &fakeClipboard{}
	dir := t.TempDir()
	m := NewNotesModel(context.Background(), services, cb, "02.01.2006", dir, newPalette(models.ThemeLight))

	f := &notesFixture{services: services, clipboard: cb, model: m, dir: dir}
	f.send(t, exec(t, m.Init()))
	return f
}

func (f *notesFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := f.model.Update(msg)
	return cmd
}

// createViaForm drives the new-note form and reloads the list.
func (f *notesFixture) createViaForm(t *testing.T, text, tags, folder string) {
	t.Helper()

	f.send(t, exec(t, f.send(t, runes("n"))))
	require.Equal(t, modeForm, f.model.mode)
	require.False(t, f.model.form.editing())

	f.model.form.text.SetValue(text)
	f.model.form.inputs[fieldTags-1].SetValue(tags)
	f.model.form.inputs[fieldFolder-1].SetValue(folder)

	reload := f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})))
	require.Equal(t, modeList, f.model.mode, f.model.form.errMsg)
	f.send(t, exec(t, reload))
}

func TestUnlockModel_WrongPassword(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	_, err := services.Session.Unlock(ctx, "p1")
	require.NoError(t, err)
	_, err = services.Notes.Create(ctx, models.NoteInput{Text: "secret"})
	require.NoError(t, err)
	services.Session.Lock()

	m := NewUnlockModel(ctx, services.Session, newPalette(models.ThemeLight))
	m.input.SetValue("wrong")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.submitting)
	msg := exec(t, cmd)

	_, cmd = m.Update(msg)
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgIncorrectPassword, m.errMsg)
	assert.Empty(t, m.input.Value(), "password input is cleared")
	assert.False(t, services.Session.IsUnlocked())
	assert.Contains(t, m.View(), app.MsgIncorrectPassword)
}

func TestUnlockModel_SuccessNavigatesToNotes(t *testing.T) {
	services := newTestServices(t)
	m := NewUnlockModel(context.Background(), services.Session, newPalette(models.ThemeLight))
	m.input.SetValue("p1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = m.Update(exec(t, cmd))

	assert.Equal(t, NavigateTo{Page: pageNotes}, exec(t, cmd))
	assert.True(t, services.Session.IsUnlocked())
}

func TestUnlockModel_EmptyPassword(t *testing.T) {
	services := newTestServices(t)
	m := NewUnlockModel(context.Background(), services.Session, newPalette(models.ThemeLight))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(exec(t, cmd))

	assert.Equal(t, app.MsgPasswordRequired, m.errMsg)
}

func TestUnlockModel_LockedMsgShowsReason(t *testing.T) {
	m := NewUnlockModel(context.Background(), newTestServices(t).Session, newPalette(models.ThemeLight))
	m.input.SetValue("typed")

	m.Update(lockedMsg{reason: msgAutoLocked})

	assert.Equal(t, msgAutoLocked, m.status)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), msgAutoLocked)
}

func TestNotesModel_CreateEditDelete(t *testing.T) {
	f := newNotesFixture(t)
	ctx := context.Background()

	f.createViaForm(t, "Buy milk", "home, , errands", "")
	require.Len(t, f.model.notes, 1)
	assert.Equal(t, statusSaved, f.model.status)
	assert.Equal(t, []string{"home", "errands"}, f.model.notes[0].Tags)
	id := f.model.notes[0].ID

	// edit
	f.send(t, exec(t, f.send(t, runes("e"))))
	require.Equal(t, modeForm, f.model.mode)
	require.True(t, f.model.form.editing())
	assert.Equal(t, "Buy milk", f.model.form.text.Value())
	editing, ok := f.services.Session.EditingID()
	require.True(t, ok)
	assert.Equal(t, id, editing)

	f.model.form.text.SetValue("Buy oat milk")
	f.send(t, exec(t, f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})))))

	note, err := f.services.Notes.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", note.Text)
	_, ok = f.services.Session.EditingID()
	assert.False(t, ok)

	// delete with confirmation
	f.send(t, runes("d"))
	require.Equal(t, modeConfirmDelete, f.model.mode)
	assert.Contains(t, f.model.View(), "Buy oat milk")
	f.send(t, exec(t, f.send(t, exec(t, f.send(t, runes("y"))))))

	assert.Equal(t, statusDeleted, f.model.status)
	assert.Empty(t, f.model.notes)
	all, err := f.services.Notes.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNotesModel_SaveValidationKeepsForm(t *testing.T) {
	f := newNotesFixture(t)

	f.send(t, exec(t, f.send(t, runes("n"))))
	f.model.form.text.SetValue("   ")
	f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})))

	assert.Equal(t, modeForm, f.model.mode)
	assert.Equal(t, app.MsgTextAndPasswordRequired, f.model.form.errMsg)
	assert.False(t, f.model.form.submitting)
}

func TestNotesModel_CancelEdit(t *testing.T) {
	f := newNotesFixture(t)
	f.createViaForm(t, "note", "", "")

	f.send(t, exec(t, f.send(t, runes("e"))))
	_, ok := f.services.Session.EditingID()
	require.True(t, ok)

	f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyEsc})))

	assert.Equal(t, modeList, f.model.mode)
	_, ok = f.services.Session.EditingID()
	assert.False(t, ok)
}

func TestNotesModel_FolderFilterCycling(t *testing.T) {
	f := newNotesFixture(t)

	for _, name := range []string{"Work", "Home"} {
		f.send(t, runes("a"))
		require.Equal(t, modeFolder, f.model.mode)
		f.model.folderInput.SetValue(name)
		f.send(t, exec(t, f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyEnter})))))
		assert.Equal(t, statusFolderAdded, f.model.status)
	}
	require.Equal(t, []string{"Work", "Home"}, f.model.folders)

	f.send(t, runes("a"))
	f.model.folderInput.SetValue("Work")
	f.send(t, exec(t, f.send(t, exec(t, f.send(t, tea.KeyMsg{Type: tea.KeyEnter})))))
	assert.Equal(t, statusFolderExists, f.model.status)

	f.createViaForm(t, "a", "", "Work")
	f.createViaForm(t, "b", "", "Home")
	f.createViaForm(t, "c", "", "")
	require.Len(t, f.model.notes, 3)

	wantByFolder := []struct {
		folder string
		texts  []string
	}{
		{"Work", []string{"a"}},
		{"Home", []string{"b"}},
		{"", []string{"a", "b", "c"}},
	}
	for _, want := range wantByFolder {
		f.send(t, exec(t, f.send(t, runes("f"))))
		assert.Equal(t, want.folder, f.model.folder)

		var texts []string
		for _, n := range f.model.notes {
			texts = append(texts, n.Text)
		}
		assert.Equal(t, want.texts, texts)
	}
}

func TestNextFolder(t *testing.T) {
	folders := []string{"A", "B"}
	tests := []struct {
		name    string
		folders []string
		current string
		want    string
	}{
		{"all to first", folders, "", "A"},
		{"first to second", folders, "A", "B"},
		{"last back to all", folders, "B", ""},
		{"vanished folder restarts", folders, "Gone", "A"},
		{"no folders", nil, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextFolder(tt.folders, tt.current))
		})
	}
}

func TestNotesModel_CopyToClipboard(t *testing.T) {
	f := newNotesFixture(t)
	f.createViaForm(t, "copy me", "x", "")

	f.send(t, exec(t, f.send(t, runes("c"))))

	assert.Equal(t, statusCopied, f.model.status)
	assert.Contains(t, f.clipboard.text, "copy me")
	assert.Contains(t, f.clipboard.text, "Tags: x")

	f.clipboard.err = errors.New("no clipboard")
	f.send(t, exec(t, f.send(t, runes("c"))))
	assert.Equal(t, app.MsgClipboardUnavailable, f.model.errMsg)
}

func TestNotesModel_ExportAll(t *testing.T) {
	f := newNotesFixture(t)

	f.send(t, exec(t, f.send(t, runes("x"))))
	assert.Equal(t, app.MsgNothingToExport, f.model.errMsg)
	_, err := os.Stat(filepath.Join(f.dir, "vaultlify_notes.txt"))
	assert.True(t, os.IsNotExist(err), "no file for an empty vault")

	f.createViaForm(t, "first", "", "")
	f.createViaForm(t, "second", "", "")
	f.send(t, exec(t, f.send(t, runes("x"))))

	require.Empty(t, f.model.errMsg)
	raw, err := os.ReadFile(filepath.Join(f.dir, "vaultlify_notes.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Note 1")
	assert.Contains(t, string(raw), "second")
}

func TestNotesModel_ToggleTheme(t *testing.T) {
	f := newNotesFixture(t)

	f.send(t, exec(t, f.send(t, runes("t"))))
	assert.Equal(t, models.ThemeDark, f.model.palette.theme)

	stored, err := f.services.Preferences.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, stored)

	f.send(t, exec(t, f.send(t, runes("t"))))
	assert.Equal(t, models.ThemeLight, f.model.palette.theme)
}

func TestNotesModel_Lock(t *testing.T) {
	f := newNotesFixture(t)
	f.createViaForm(t, "private", "", "")

	msg := exec(t, f.send(t, runes("L")))

	assert.False(t, f.services.Session.IsUnlocked())
	assert.Equal(t, NavigateTo{Page: pageUnlock, Payload: lockedMsg{reason: app.MsgVaultLocked}}, msg)
	assert.Empty(t, f.model.notes)
}

func TestNotesModel_LoadWhileLockedGoesToUnlock(t *testing.T) {
	f := newNotesFixture(t)
	f.services.Session.Lock()

	msg := exec(t, f.send(t, exec(t, f.model.cmdLoad())))

	assert.Equal(t, NavigateTo{Page: pageUnlock, Payload: lockedMsg{reason: app.MsgVaultLocked}}, msg)
}

func TestRootModel_Navigation(t *testing.T) {
	services := newTestServices(t)
	ctx := context.Background()
	p := newPalette(models.ThemeLight)
	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(ctx, services.Session, p),
		pageNotes:  NewNotesModel(ctx, services, &fakeClipboard{}, "", t.TempDir(), p),
	}
	info := models.NewAppBuildInfo("1.0.0", "", "abc")
	var root tea.Model = NewRootModel(pages, pageUnlock, services.Session, p, info, 0)

	// about window
	root, _ = root.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, root.View(), "ABOUT")
	assert.Contains(t, root.View(), "1.0.0")
	root, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, root.View(), "UNLOCK VAULT")

	_, err := services.Session.Unlock(ctx, "p1")
	require.NoError(t, err)
	root, _ = root.Update(NavigateTo{Page: pageNotes})
	assert.Equal(t, pageNotes, root.(RootModel).CurrentPage())

	// the auto-lock worker locked the session behind the UI's back
	services.Session.Lock()
	root, cmd := root.Update(sessionTickMsg{})
	assert.Equal(t, pageUnlock, root.(RootModel).CurrentPage())
	root, _ = root.Update(exec(t, cmd))
	assert.Contains(t, root.View(), msgAutoLocked)

	root, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, root.(RootModel).QuitByUser())
	assert.Equal(t, tea.QuitMsg{}, exec(t, cmd))
}

func TestNew(t *testing.T) {
	_, err := New(nil, config.Export{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServices)

	ui, err := New(newTestServices(t), config.Export{}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotEmpty(t, ui.dateLayout)
}
