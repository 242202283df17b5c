package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-vault/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldText = iota
	fieldTags
	fieldFolder
	fieldDate
	fieldCount
)

// noteForm edits the user-editable fields of one note. focus 0 is the text
// area; the rest index into inputs shifted by one.
type noteForm struct {
	editingID  int64
	text       textarea.Model
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newNoteForm(note *models.Note, folders []string) noteForm {
	text := textarea.New()
	text.Placeholder = "Write your note..."
	text.SetWidth(60)
	text.SetHeight(6)
	text.CharLimit = 0
	text.Focus()

	inputs := make([]textinput.Model, fieldCount-1)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldTags-1].Placeholder = "work, urgent"
	inputs[fieldFolder-1].Placeholder = "no folder"
	if len(folders) > 0 {
		inputs[fieldFolder-1].Placeholder = strings.Join(folders, " / ")
	}
	inputs[fieldDate-1].Placeholder = models.DateLayout + " (today)"

	f := noteForm{text: text, inputs: inputs}
	if note == nil {
		return f
	}

	f.editingID = note.ID
	f.text.SetValue(note.Text)
	f.inputs[fieldTags-1].SetValue(strings.Join(note.Tags, ", "))
	f.inputs[fieldFolder-1].SetValue(note.Folder)
	f.inputs[fieldDate-1].SetValue(note.Date)
	return f
}

func (f noteForm) editing() bool {
	return f.editingID != 0
}

func (f noteForm) input() models.NoteInput {
	return models.NoteInput{
		Text:   f.text.Value(),
		Tags:   models.ParseTags(f.inputs[fieldTags-1].Value()),
		Folder: strings.TrimSpace(f.inputs[fieldFolder-1].Value()),
		Date:   strings.TrimSpace(f.inputs[fieldDate-1].Value()),
	}
}

func (f *noteForm) setFocus(i int) {
	f.text.Blur()
	for j := range f.inputs {
		f.inputs[j].Blur()
	}

	f.focus = (i + fieldCount) % fieldCount
	if f.focus == fieldText {
		f.text.Focus()
		return
	}
	f.inputs[f.focus-1].Focus()
}

func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldText {
		f.text, cmd = f.text.Update(msg)
		return f, cmd
	}
	f.inputs[f.focus-1], cmd = f.inputs[f.focus-1].Update(msg)
	return f, cmd
}

func (f noteForm) view(p *palette) string {
	title := "NEW NOTE"
	if f.editing() {
		title = "EDIT NOTE"
	}

	var b strings.Builder
	b.WriteString("Text\n")
	b.WriteString(f.text.View())
	b.WriteString("\n\n")
	b.WriteString("Tags    │ [" + f.inputs[fieldTags-1].View() + "]\n")
	b.WriteString("Folder  │ [" + f.inputs[fieldFolder-1].View() + "]\n")
	b.WriteString("Date    │ [" + f.inputs[fieldDate-1].View() + "]\n")
	if f.submitting {
		b.WriteString("\nSaving...\n")
	}
	b.WriteString("\n")
	b.WriteString(p.feedback("", f.errMsg))

	return p.renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ tab: next field │ esc: cancel")
}
