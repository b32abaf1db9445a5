package tui

import (
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docker/toggle/pkg/toggle"
	"github.com/docker/toggle/pkg/tui/components/notification"
	"github.com/docker/toggle/pkg/tui/components/switcher"
	"github.com/docker/toggle/pkg/tui/core"
	"github.com/docker/toggle/pkg/tui/messages"
	"github.com/docker/toggle/pkg/tui/styles"
)

// DefaultClickLimit is the number of linked-toggle changes after which
// further toggles are ignored.
const DefaultClickLimit = 4

const windowTitle = "toggle"

// Indexes into appModel.controls, in focus order.
const (
	controlLeft = iota
	controlRight
	controlReset
	controlUncontrolled
	controlUncontrolledReset
	controlCount
)

// Options configures the demo.
type Options struct {
	// ClickLimit defaults to DefaultClickLimit when <= 0.
	ClickLimit int
	// UncontrolledInitialOn is the starting value of the standalone toggle.
	UncontrolledInitialOn bool
	// Reducer is handed to every toggle. nil uses toggle.Reduce.
	Reducer toggle.Reducer
}

// KeyMap defines the global key bindings.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     core.NextKey,
		Prev:     core.PrevKey,
		First:    core.FirstKey,
		Last:     core.LastKey,
		Activate: core.ActivateKey,
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.First, k.Last, k.Activate, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// clickZone records where a control was drawn in the last View.
type clickZone struct {
	startX, endX int
	startY, endY int
	control      int
}

func (z clickZone) contains(x, y int) bool {
	return x >= z.startX && x < z.endX && y >= z.startY && y < z.endY
}

// appModel composes two toggles linked through a shared value, a reset
// button for that pair, and a standalone toggle that owns its own state.
type appModel struct {
	clickLimit   int
	timesClicked int
	bothOn       bool

	left         *toggle.Controller
	right        *toggle.Controller
	uncontrolled *toggle.Controller

	controls []*switcher.Switch
	focused  int
	zones    []clickZone

	notification notification.Manager
	help         help.Model
	keyMap       KeyMap

	width, height int

	// pending collects commands raised by change callbacks during an update.
	pending []tea.Cmd
	err     error
}

// New creates the top-level model.
func New(opts Options) tea.Model {
	return newAppModel(opts)
}

func newAppModel(opts Options) *appModel {
	m := &appModel{
		clickLimit:   opts.ClickLimit,
		notification: notification.New(),
		help:         help.New(),
		keyMap:       DefaultKeyMap(),
	}
	if m.clickLimit <= 0 {
		m.clickLimit = DefaultClickLimit
	}

	m.help.Styles.ShortKey = styles.HelpKeyStyle
	m.help.Styles.ShortDesc = styles.HelpDescStyle

	m.left = toggle.New(toggle.Config{Reducer: opts.Reducer})
	m.right = toggle.New(toggle.Config{Reducer: opts.Reducer})
	m.uncontrolled = toggle.New(toggle.Config{
		InitialOn: opts.UncontrolledInitialOn,
		Reducer:   opts.Reducer,
	})

	m.controls = make([]*switcher.Switch, controlCount)
	for i := range m.controls {
		m.controls[i] = switcher.New(toggle.Props{})
	}
	m.controls[m.focused].Focus()
	m.render()

	return m
}

// Err returns the error that stopped the program, if any.
func Err(model tea.Model) error {
	if m, ok := model.(*appModel); ok {
		return m.err
	}
	return nil
}

// render hands every controller its current owner-supplied props and
// rebuilds the props of every control, the way a parent re-renders its
// children after a state change.
func (m *appModel) render() {
	for _, c := range []*toggle.Controller{m.left, m.right} {
		c.SetValue(&m.bothOn)
		c.SetOnChange(m.handleToggleChange)
	}
	m.uncontrolled.SetOnChange(m.handleUncontrolledChange)

	m.controls[controlLeft].SetProps(m.left.TogglerProps(toggle.Props{Label: "Left"}))
	m.controls[controlRight].SetProps(m.right.TogglerProps(toggle.Props{Label: "Right"}))
	m.controls[controlReset].SetProps(m.left.ResetterProps(toggle.Props{
		Label:   "Reset",
		OnClick: m.handleReset,
	}))
	m.controls[controlUncontrolled].SetProps(m.uncontrolled.TogglerProps(toggle.Props{Label: "Standalone"}))
	m.controls[controlUncontrolledReset].SetProps(m.uncontrolled.ResetterProps(toggle.Props{Label: "Reset standalone"}))
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.render()

	if len(m.pending) == 0 {
		return m, cmd
	}
	cmds := append(m.pending, cmd)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *appModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notification.SetSize(msg.Width, msg.Height)
		for _, c := range m.controls {
			c.SetSize(msg.Width, 3)
		}
		return nil

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil
		}
		for _, z := range m.zones {
			if z.contains(msg.X, msg.Y) {
				return m.press(z.control)
			}
		}
		return nil

	case messages.ActivatedMsg:
		slog.Debug("Control activated", "label", msg.Label, "times_clicked", m.timesClicked, "both_on", m.bothOn)
		return nil

	case messages.ToggleChangedMsg:
		var cmd tea.Cmd
		m.notification, cmd = m.notification.Update(notification.ShowMsg{Text: describeChange(msg)})
		return cmd

	case notification.ShowMsg, notification.HideMsg:
		var cmd tea.Cmd
		m.notification, cmd = m.notification.Update(msg)
		return cmd

	case messages.FatalErrorMsg:
		slog.Error("Stopping after unrecoverable error", "error", msg.Err)
		m.err = msg.Err
		return tea.Quit
	}

	return nil
}

func (m *appModel) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.keyMap.Quit) {
		return tea.Quit
	}

	switch {
	case key.Matches(msg, m.keyMap.Next):
		m.setFocus(core.MoveFocus(m.focused, len(m.controls), core.FocusNext))
		return nil
	case key.Matches(msg, m.keyMap.Prev):
		m.setFocus(core.MoveFocus(m.focused, len(m.controls), core.FocusPrev))
		return nil
	case key.Matches(msg, m.keyMap.First):
		m.setFocus(core.MoveFocus(m.focused, len(m.controls), core.FocusFirst))
		return nil
	case key.Matches(msg, m.keyMap.Last):
		m.setFocus(core.MoveFocus(m.focused, len(m.controls), core.FocusLast))
		return nil
	}

	_, cmd := m.controls[m.focused].Update(msg)
	return cmd
}

func (m *appModel) setFocus(i int) {
	m.controls[m.focused].Blur()
	m.focused = i
	m.controls[m.focused].Focus()
}

// press focuses and activates a control, as a mouse click does.
func (m *appModel) press(i int) tea.Cmd {
	m.setFocus(i)
	c := m.controls[i]
	if err := c.Activate(); err != nil {
		return core.CmdHandler(messages.FatalErrorMsg{Err: err})
	}
	return core.CmdHandler(messages.ActivatedMsg{Label: c.Label()})
}

func (m *appModel) View() tea.View {
	return toFullscreenView(m.renderContent())
}

// renderContent draws the screen and records the click zone of every control.
func (m *appModel) renderContent() string {
	m.zones = m.zones[:0]
	var rows []string
	y := 0
	add := func(block string) {
		rows = append(rows, block)
		y += lipgloss.Height(block)
	}
	addControls := func(indexes ...int) {
		x := 0
		views := make([]string, 0, len(indexes))
		height := 0
		for _, i := range indexes {
			v := m.controls[i].View()
			w := lipgloss.Width(v)
			m.zones = append(m.zones, clickZone{startX: x, endX: x + w, startY: y, endY: y + lipgloss.Height(v), control: i})
			x += w
			height = max(height, lipgloss.Height(v))
			views = append(views, v)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
		y += height
	}

	add(styles.TitleStyle.Render("Linked toggles"))
	addControls(controlLeft, controlRight)
	add(m.separator())
	if status := m.statusLine(); status != "" {
		add(status)
	}
	addControls(controlReset)
	add(m.separator())
	add(styles.SectionStyle.Render("Uncontrolled Toggle:"))
	addControls(controlUncontrolled, controlUncontrolledReset)
	add("")
	add(m.help.View(m.keyMap))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.notification.Open() {
		content = lipgloss.NewCompositor(lipgloss.NewLayer(content), m.notification.GetLayer()).Render()
	}

	return content
}

func (m *appModel) separator() string {
	width := 40
	if m.width > 0 {
		width = min(m.width, width)
	}
	return styles.SeparatorStyle.Render(strings.Repeat("─", width))
}

func toFullscreenView(content string) tea.View {
	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.WindowTitle = windowTitle
	return view
}
