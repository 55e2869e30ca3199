package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	refresh  key.Binding
	lock     key.Binding
	settings key.Binding
	copy     key.Binding
	delete   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	lock:     key.NewBinding(key.WithKeys("L")),
	settings: key.NewBinding(key.WithKeys("s")),
	copy:     key.NewBinding(key.WithKeys("c")),
	delete:   key.NewBinding(key.WithKeys("d")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
