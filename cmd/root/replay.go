package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/docker/toggle/pkg/cli"
	"github.com/docker/toggle/pkg/toggle"
)

type replayFlags struct {
	initialOn  bool
	controlled bool
}

func newReplayCmd() *cobra.Command {
	var flags replayFlags

	cmd := &cobra.Command{
		Use:   "replay <action>...",
		Short: "Dispatch actions to a toggle and print every step",
		Long: `Dispatch a sequence of actions (toggle, reset) to a single toggle without the TUI.

By default the toggle owns its state. With --controlled the command owns the
value instead and applies every change the toggle reports.`,
		Example: `  toggle replay toggle toggle reset
  toggle replay --controlled --initial-on toggle reset`,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&flags.initialOn, "initial-on", false, "Start switched on")
	cmd.Flags().BoolVar(&flags.controlled, "controlled", false, "Own the value outside the toggle")

	return cmd
}

func (f *replayFlags) run(cmd *cobra.Command, args []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())

	cfg := toggle.Config{InitialOn: f.initialOn}
	if f.controlled {
		value := f.initialOn
		cfg.Value = &value
		cfg.OnChange = func(state toggle.State, action toggle.Action) {
			out.PrintChange(state, action)
			value = state.On
		}
	} else {
		cfg.OnChange = out.PrintChange
	}
	c := toggle.New(cfg)

	out.PrintHeader(c.IsControlled(), c.On())

	for i, arg := range args {
		action := parseAction(arg, c.InitialState())
		if err := c.Dispatch(action); err != nil {
			out.PrintError(err)
			return RuntimeError{Err: err}
		}
		out.PrintStep(i+1, action, c.On())
	}

	return nil
}

// parseAction maps a command line word to an action. Words that are not
// a known kind are passed through so the reducer can reject them.
func parseAction(arg string, initial toggle.State) toggle.Action {
	kind := toggle.ActionKind(strings.ToUpper(strings.TrimSpace(arg)))
	if kind == toggle.ActionReset {
		return toggle.Action{Kind: kind, InitialState: initial}
	}
	return toggle.Action{Kind: kind}
}
