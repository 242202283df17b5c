package tui

import (
	"time"

	"github.com/MKhiriev/go-note-vault/internal/service"
	"github.com/MKhiriev/go-note-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const msgAutoLocked = "Vault locked after inactivity."

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the about window
// 3) handles NavigateTo messages
// 4) sends the user back to the unlock page once the session is locked
// 5) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	session   service.SessionController
	palette   *palette
	buildInfo models.AppBuildInfo
	tick      time.Duration

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage. tick is how often the
// session state is polled; zero disables polling.
func NewRootModel(pages map[string]tea.Model, startPage string, session service.SessionController, p *palette, buildInfo models.AppBuildInfo, tick time.Duration) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		session:     session,
		palette:     p,
		buildInfo:   buildInfo,
		tick:        tick,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	cmds = append(cmds, r.scheduleTick())
	return tea.Batch(cmds...)
}

func (r RootModel) scheduleTick() tea.Cmd {
	if r.tick <= 0 {
		return nil
	}
	return tea.Tick(r.tick, func(time.Time) tea.Msg { return sessionTickMsg{} })
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if _, ok := msg.(sessionTickMsg); ok {
		if r.currentName != pageUnlock && !r.session.IsUnlocked() {
			return r.navigate(NavigateTo{Page: pageUnlock, Payload: lockedMsg{reason: msgAutoLocked}}, r.scheduleTick())
		}
		return r, r.scheduleTick()
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav, nil)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo, extra tea.Cmd) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, extra
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	var cmd tea.Cmd
	if nav.Payload != nil {
		payload := nav.Payload
		cmd = func() tea.Msg { return payload }
	} else {
		cmd = r.current.Init()
	}
	if extra == nil {
		return r, cmd
	}
	return r, tea.Batch(cmd, extra)
}

func (r RootModel) View() string {
	var body string
	switch {
	case r.showBuildInfo:
		body = r.palette.renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		body = r.palette.renderPage("NOTE VAULT", "", "")
	default:
		body = r.current.View()
	}
	return r.palette.styles.app.Render(body)
}

// QuitByUser reports whether the program ended with Ctrl+C.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

// CurrentPage returns the name of the active page.
func (r RootModel) CurrentPage() string {
	return r.currentName
}
