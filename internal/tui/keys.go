package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	save      key.Binding
	quit      key.Binding
	lock      key.Binding
	newNote   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	exportAll key.Binding
	folder    key.Binding
	addFolder key.Binding
	theme     key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	lock:      key.NewBinding(key.WithKeys("L")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	exportAll: key.NewBinding(key.WithKeys("x")),
	folder:    key.NewBinding(key.WithKeys("f")),
	addFolder: key.NewBinding(key.WithKeys("a")),
	theme:     key.NewBinding(key.WithKeys("t")),
	about:     key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
