package root

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/docker/toggle/pkg/cli"
	"github.com/docker/toggle/pkg/tui"
	"github.com/docker/toggle/pkg/userconfig"
)

type runFlags struct {
	clickLimit int
	initialOn  bool
}

func newRunCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		Long:  "Show two toggles linked through a shared value and a standalone toggle that owns its state",
		Example: `  toggle run
  toggle run --click-limit 6 --initial-on`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.run(cmd)
		},
	}

	cmd.Flags().IntVar(&flags.clickLimit, "click-limit", 0, fmt.Sprintf("Changes accepted by the linked toggles before toggling is ignored (default %d)", tui.DefaultClickLimit))
	cmd.Flags().BoolVar(&flags.initialOn, "initial-on", false, "Start the standalone toggle switched on")

	return cmd
}

func (f *runFlags) run(cmd *cobra.Command) error {
	opts, err := f.options(cmd)
	if err != nil {
		return err
	}

	slog.Debug("Starting toggle TUI", "click_limit", opts.ClickLimit, "initial_on", opts.UncontrolledInitialOn)

	p := tea.NewProgram(tui.New(opts),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if err := tui.Err(final); err != nil {
		cli.NewPrinter(cmd.ErrOrStderr()).PrintError(err)
		return RuntimeError{Err: err}
	}
	return nil
}

// options merges the user config with the flags set on the command line.
func (f *runFlags) options(cmd *cobra.Command) (tui.Options, error) {
	config, err := userconfig.Load()
	if err != nil {
		return tui.Options{}, fmt.Errorf("failed to load config: %w", err)
	}

	settings := config.GetSettings()
	opts := tui.Options{
		ClickLimit:            settings.ClickLimit,
		UncontrolledInitialOn: settings.UncontrolledInitialOn,
	}

	if cmd.Flags().Changed("click-limit") {
		if f.clickLimit <= 0 {
			return tui.Options{}, fmt.Errorf("--click-limit must be positive, got %d", f.clickLimit)
		}
		opts.ClickLimit = f.clickLimit
	}
	if cmd.Flags().Changed("initial-on") {
		opts.UncontrolledInitialOn = f.initialOn
	}

	return opts, nil
}
