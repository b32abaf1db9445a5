package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/docker/toggle/pkg/toggle"
)

type Printer struct {
	out io.Writer

	bold  *color.Color
	on    *color.Color
	off   *color.Color
	faint *color.Color
}

// NewPrinter returns a printer that colours its output only when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{
		out:   out,
		bold:  color.New(color.Bold),
		on:    color.New(color.FgGreen, color.Bold),
		off:   color.New(color.FgRed),
		faint: color.New(color.Faint),
	}
	if !isTerminal(out) {
		for _, c := range []*color.Color{p.bold, p.on, p.off, p.faint} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// PrintHeader prints the mode a replay runs in and its starting value.
func (p *Printer) PrintHeader(controlled bool, on bool) {
	mode := "uncontrolled"
	if controlled {
		mode = "controlled"
	}
	p.Printf("%s toggle, starting %s\n", p.bold.Sprint(mode), p.value(on))
}

// PrintStep prints the value of the toggle after a dispatched action.
func (p *Printer) PrintStep(step int, action toggle.Action, on bool) {
	p.Printf("%2d. %-6s → %s\n", step, action.Kind, p.value(on))
}

// PrintChange prints what a change callback received.
func (p *Printer) PrintChange(state toggle.State, action toggle.Action) {
	p.Println(p.faint.Sprintf("    onChange(%s, %s)", formatState(state), action.Kind))
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) {
	p.Printf("%s %s\n", p.off.Sprint("error:"), err)
}

func (p *Printer) value(on bool) string {
	if on {
		return p.on.Sprint("on")
	}
	return p.off.Sprint("off")
}

func formatState(state toggle.State) string {
	return fmt.Sprintf("{on: %t, internal: %t}", state.On, state.Internal)
}
