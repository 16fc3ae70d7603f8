package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	next    key.Binding
	prev    key.Binding
	like    key.Binding
	dislike key.Binding
	save    key.Binding
	pause   key.Binding
	toggle  key.Binding
	submit  key.Binding
	queue   key.Binding
	saved   key.Binding
	back    key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		next:    key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next clip")),
		prev:    key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous clip")),
		like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		dislike: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dislike")),
		save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		pause:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		queue:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "queue")),
		saved:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "saved")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.pause},
		{k.like, k.dislike, k.save},
		{k.queue, k.saved, k.back, k.quit},
	}
}
