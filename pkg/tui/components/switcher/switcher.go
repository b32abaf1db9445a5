// Package switcher renders a toggle.Props bag as a terminal switch or button.
package switcher

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docker/toggle/pkg/toggle"
	"github.com/docker/toggle/pkg/tui/core"
	"github.com/docker/toggle/pkg/tui/core/layout"
	"github.com/docker/toggle/pkg/tui/messages"
	"github.com/docker/toggle/pkg/tui/styles"
)

const (
	onText  = " ● ON  "
	offText = "  OFF ○ "
)

// Switch is the element a Controller's props are attached to.
// With a Pressed indicator it draws a two-state switch, without one a button.
type Switch struct {
	props   toggle.Props
	focused bool
	width   int
	height  int
}

var (
	_ layout.Model     = (*Switch)(nil)
	_ layout.Focusable = (*Switch)(nil)
	_ layout.Help      = (*Switch)(nil)
)

func New(props toggle.Props) *Switch {
	return &Switch{props: props}
}

// SetProps replaces the props, typically after the owner re-rendered.
func (s *Switch) SetProps(props toggle.Props) {
	s.props = props
}

func (s *Switch) Props() toggle.Props {
	return s.props
}

// Label returns the label from the props.
func (s *Switch) Label() string {
	return s.props.Label
}

// Activate runs the OnClick handler, if any.
func (s *Switch) Activate() error {
	if s.props.OnClick == nil {
		return nil
	}
	return s.props.OnClick()
}

func (s *Switch) Init() tea.Cmd {
	return nil
}

func (s *Switch) Update(msg tea.Msg) (layout.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused || !core.IsActivationKey(keyMsg) {
		return s, nil
	}
	return s, s.activateCmd()
}

func (s *Switch) activateCmd() tea.Cmd {
	if err := s.Activate(); err != nil {
		return core.CmdHandler(messages.FatalErrorMsg{Err: err})
	}
	return core.CmdHandler(messages.ActivatedMsg{Label: s.props.Label})
}

func (s *Switch) View() string {
	var body string
	if s.props.Pressed == nil {
		body = styles.ButtonStyle.Render(" " + s.props.Label + " ")
	} else {
		body = s.renderSwitch()
	}

	frame := styles.BlurredStyle
	if s.focused {
		frame = styles.FocusedStyle
	}
	return frame.Render(body)
}

func (s *Switch) renderSwitch() string {
	indicator := styles.SwitchOffStyle.Render(offText)
	if s.props.IsPressed() {
		indicator = styles.SwitchOnStyle.Render(onText)
	}
	if s.props.Label == "" {
		return indicator
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, indicator, styles.LabelStyle.Render(s.props.Label))
}

func (s *Switch) SetSize(width, height int) tea.Cmd {
	s.width = width
	s.height = height
	return nil
}

func (s *Switch) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *Switch) Blur() tea.Cmd {
	s.focused = false
	return nil
}

func (s *Switch) IsFocused() bool {
	return s.focused
}

func (s *Switch) Bindings() []key.Binding {
	verb := "toggle"
	if s.props.Pressed == nil {
		verb = "press"
	}
	return []key.Binding{
		key.NewBinding(
			key.WithKeys(core.ActivateKey.Keys()...),
			key.WithHelp(core.ActivateKey.Help().Key, verb),
		),
	}
}

func (s *Switch) Help() help.KeyMap {
	return core.NewSimpleHelp(s.Bindings())
}
