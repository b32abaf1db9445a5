package messages

import (
	"github.com/docker/toggle/pkg/toggle"
)

// ToggleChangedMsg reports a change callback fired by a toggle that
// nobody else is listening to, so the UI can surface it.
type ToggleChangedMsg struct {
	Source string
	State  toggle.State
	Action toggle.Action
}

// ActivatedMsg is sent after a control's activation handler ran without error.
type ActivatedMsg struct {
	Label string
}

// FatalErrorMsg carries an error no component can recover from.
// The top-level model stops the program when it sees one.
type FatalErrorMsg struct {
	Err error
}
