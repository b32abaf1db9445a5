package notification

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotification_InitialState(t *testing.T) {
	n := New()

	require.Empty(t, n.items)
	require.False(t, n.Open())
	require.Empty(t, n.View())
}

func TestNotification_Show(t *testing.T) {
	n := New()

	updated, cmd := n.Update(ShowMsg{Text: "Uncontrolled toggle: on"})

	require.NotNil(t, cmd)
	require.Len(t, updated.items, 1)
	require.Equal(t, "Uncontrolled toggle: on", updated.items[0].Text)
	require.True(t, updated.Open())
	require.Contains(t, updated.View(), "Uncontrolled toggle: on")
}

func TestNotification_HideByID(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "first"})
	updated, _ = updated.Update(ShowMsg{Text: "second"})
	require.Len(t, updated.items, 2)

	updated, _ = updated.Update(HideMsg{ID: updated.items[0].ID})

	require.Len(t, updated.items, 1)
	require.Equal(t, "second", updated.items[0].Text)
}

func TestNotification_HideAll(t *testing.T) {
	n := New()

	updated, _ := n.Update(ShowMsg{Text: "Test"})
	updated, _ = updated.Update(HideMsg{})

	require.Empty(t, updated.items)
	require.False(t, updated.Open())
}

func TestNotification_KeepsNewest(t *testing.T) {
	n := New()

	for i := range maxItems + 2 {
		n, _ = n.Update(ShowMsg{Text: fmt.Sprintf("n%d", i)})
	}

	require.Len(t, n.items, maxItems)
	require.Equal(t, "n2", n.items[0].Text)
	require.Equal(t, fmt.Sprintf("n%d", maxItems+1), n.items[maxItems-1].Text)
}

func TestNotification_GetLayer(t *testing.T) {
	n := New()
	n.SetSize(100, 50)

	require.Nil(t, n.GetLayer())

	updated, _ := n.Update(ShowMsg{Text: "Test"})
	require.NotNil(t, updated.GetLayer())

	row, col := updated.position()
	require.Equal(t, 46, row)
	require.Equal(t, 91, col)
}
