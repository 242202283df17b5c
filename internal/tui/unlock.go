package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel asks for the vault password. A vault that has never been
// written unlocks empty with whatever password is entered first; that
// password then protects it.
type UnlockModel struct {
	ctx     context.Context
	session service.SessionController
	palette *palette

	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

func NewUnlockModel(ctx context.Context, session service.SessionController, p *palette) *UnlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &UnlockModel{
		ctx:     ctx,
		session: session,
		palette: p,
		input:   passwordInput,
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lockedMsg:
		m.status = msg.reason
		m.errMsg = ""
		m.submitting = false
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case unlockResultMsg:
		m.submitting = false
		m.input.Reset()
		if msg.err != nil {
			m.status = ""
			m.errMsg = app.UserMessage(msg.err)
			return m, nil
		}
		m.status = ""
		m.errMsg = ""
		return m, navigate(pageNotes, nil)
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdUnlock(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	if m.submitting {
		b.WriteString("\nDecrypting...\n")
	}
	b.WriteString("\n")
	b.WriteString(m.palette.feedback(m.status, m.errMsg))

	return m.palette.renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	return func() tea.Msg {
		_, err := session.Unlock(ctx, password)
		return unlockResultMsg{err: err}
	}
}
