package tui

import (
	"fmt"
	"log/slog"

	"github.com/docker/toggle/pkg/toggle"
	"github.com/docker/toggle/pkg/tui/core"
	"github.com/docker/toggle/pkg/tui/messages"
	"github.com/docker/toggle/pkg/tui/styles"
)

const uncontrolledSource = "Uncontrolled Toggle"

func (m *appModel) clickedTooMuch() bool {
	return m.timesClicked >= m.clickLimit
}

// handleToggleChange is the shared change callback of the linked toggles.
// Once the click limit is reached toggles are ignored, resets are not.
func (m *appModel) handleToggleChange(state toggle.State, action toggle.Action) {
	if action.Kind == toggle.ActionToggle && m.clickedTooMuch() {
		slog.Debug("Ignoring toggle, clicked too much", "times_clicked", m.timesClicked)
		return
	}

	m.bothOn = state.On
	m.timesClicked++
}

// handleReset runs after the reset action reached handleToggleChange.
func (m *appModel) handleReset() error {
	m.bothOn = false
	m.timesClicked = 0
	return nil
}

func (m *appModel) handleUncontrolledChange(state toggle.State, action toggle.Action) {
	slog.Info("Uncontrolled Toggle onChange", "on", state.On, "action", action.Kind)
	m.pending = append(m.pending, core.CmdHandler(messages.ToggleChangedMsg{
		Source: uncontrolledSource,
		State:  state,
		Action: action,
	}))
}

func (m *appModel) statusLine() string {
	switch {
	case m.clickedTooMuch():
		return styles.NoticeStyle.Render("Whoa, you clicked too much!")
	case m.timesClicked > 0:
		return styles.ClickCountStyle.Render(fmt.Sprintf("Click count: %d", m.timesClicked))
	default:
		return ""
	}
}

func describeChange(msg messages.ToggleChangedMsg) string {
	value := "off"
	if msg.State.On {
		value = "on"
	}
	return fmt.Sprintf("%s onChange: %s → %s", msg.Source, msg.Action.Kind, value)
}
