package core

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// FocusDirection represents the direction focus moves in
type FocusDirection int

const (
	FocusNext FocusDirection = iota
	FocusPrev
	FocusFirst
	FocusLast
)

// Focus and activation bindings shared by every focusable component.
// Matching and the help bar both read these, so they cannot disagree.
var (
	NextKey = key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab", "next"),
	)
	PrevKey = key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab", "prev"),
	)
	FirstKey = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	)
	LastKey = key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	)
	ActivateKey = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter/space", "press"),
	)
)

// IsActivationKey returns true if the key activates the focused control
func IsActivationKey(msg tea.KeyPressMsg) bool {
	return key.Matches(msg, ActivateKey)
}

// MoveFocus returns the index focus lands on when moving dir from current
// in a ring of n elements.
func MoveFocus(current, n int, dir FocusDirection) int {
	if n <= 0 {
		return 0
	}
	switch dir {
	case FocusNext:
		return (current + 1) % n
	case FocusPrev:
		return (current - 1 + n) % n
	case FocusFirst:
		return 0
	case FocusLast:
		return n - 1
	}
	return current
}
