package layout

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Sizeable represents components that can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Focusable represents components that can receive focus
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}

// Help represents components that provide help information
type Help interface {
	Bindings() []key.Binding
	Help() help.KeyMap
}

// Model is the base interface for all TUI components.
// View returns plain content; only the top-level model builds a tea.View.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Model, tea.Cmd)
	View() string
	Sizeable
}
