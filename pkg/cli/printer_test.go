package cli

import (
	"bytes"
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/docker/toggle/pkg/toggle"
)

func TestFormatState(t *testing.T) {
	assert.Equal(t, formatState(toggle.State{}), "{on: false, internal: false}")
	assert.Equal(t, formatState(toggle.State{On: true, Internal: true}), "{on: true, internal: true}")
}

func TestPrinter_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHeader(false, false)
	p.PrintStep(1, toggle.Action{Kind: toggle.ActionToggle}, true)
	p.PrintChange(toggle.State{On: true}, toggle.Action{Kind: toggle.ActionToggle})
	p.PrintStep(2, toggle.Action{Kind: toggle.ActionReset}, false)

	assert.Equal(t, buf.String(), `uncontrolled toggle, starting off
 1. TOGGLE → on
    onChange({on: true, internal: false}, TOGGLE)
 2. RESET  → off
`)
}

func TestPrinter_PrintError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintError(errors.New("unknown action type FLIP"))

	assert.Equal(t, buf.String(), "error: unknown action type FLIP\n")
}

func TestPrinter_ControlledHeader(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintHeader(true, true)

	assert.Equal(t, buf.String(), "controlled toggle, starting on\n")
}
