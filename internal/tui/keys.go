package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	retry     key.Binding
	newItem   key.Binding
	save      key.Binding
	delete    key.Binding
	today     key.Binding
	copy      key.Binding
	dark      key.Binding
	edit      key.Binding
	replay    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	retry:     key.NewBinding(key.WithKeys("r")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	today:     key.NewBinding(key.WithKeys("t")),
	copy:      key.NewBinding(key.WithKeys("c")),
	dark:      key.NewBinding(key.WithKeys("d")),
	edit:      key.NewBinding(key.WithKeys("e")),
	replay:    key.NewBinding(key.WithKeys("o")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
