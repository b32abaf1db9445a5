package notification

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/docker/toggle/pkg/tui/styles"
)

const (
	defaultDuration     = 3 * time.Second
	notificationPadding = 1
	maxItems            = 5
)

var nextID atomic.Uint64

type ShowMsg struct {
	Text string
}

type HideMsg struct {
	ID uint64 // If 0, hides all notifications
}

type notificationItem struct {
	ID   uint64
	Text string
}

// Manager displays stacked messages in the bottom right corner of the screen.
// The newest message is at the bottom; older ones expire or are dropped
// once more than maxItems are shown.
type Manager struct {
	width, height int
	items         []notificationItem
}

func New() Manager {
	return Manager{}
}

func (n *Manager) SetSize(width, height int) {
	n.width = width
	n.height = height
}

func (n *Manager) Update(msg tea.Msg) (Manager, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.width = msg.Width
		n.height = msg.Height
		return *n, nil

	case ShowMsg:
		id := nextID.Add(1)
		n.items = append(n.items, notificationItem{ID: id, Text: msg.Text})
		if len(n.items) > maxItems {
			n.items = n.items[len(n.items)-maxItems:]
		}

		return *n, tea.Tick(defaultDuration, func(time.Time) tea.Msg {
			return HideMsg{ID: id}
		})

	case HideMsg:
		if msg.ID == 0 {
			n.items = nil
			return *n, nil
		}

		kept := make([]notificationItem, 0, len(n.items))
		for _, item := range n.items {
			if item.ID != msg.ID {
				kept = append(kept, item)
			}
		}
		n.items = kept
		return *n, nil
	}

	return *n, nil
}

func (n *Manager) View() string {
	if len(n.items) == 0 {
		return ""
	}

	views := make([]string, 0, len(n.items))
	for _, item := range n.items {
		views = append(views, styles.NotificationStyle.Render(item.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Right, views...)
}

func (n *Manager) GetLayer() *lipgloss.Layer {
	if len(n.items) == 0 {
		return nil
	}

	row, col := n.position()
	return lipgloss.NewLayer(n.View()).X(col).Y(row)
}

func (n *Manager) position() (row, col int) {
	view := n.View()

	row = max(0, n.height-lipgloss.Height(view)-notificationPadding)
	col = max(0, n.width-lipgloss.Width(view)-notificationPadding)

	return row, col
}

func (n *Manager) Open() bool {
	return len(n.items) > 0
}
