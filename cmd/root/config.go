package root

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/docker/toggle/pkg/cli"
	"github.com/docker/toggle/pkg/userconfig"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long:  "View and manage user-level toggle configuration stored in ~/.config/toggle/config.yaml",
		Example: `  # Show the current configuration
  toggle config show

  # Show the path to the config file
  toggle config path

  # Change a setting
  toggle config set click_limit 6`,
		GroupID: "advanced",
		RunE:    runConfigShowCommand,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Long:  "Display the current user configuration in YAML format",
		Args:  cobra.NoArgs,
		RunE:  runConfigShowCommand,
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the path to the config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigPathCommand,
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change a setting",
		Long:      fmt.Sprintf("Change a setting and save the config file. Valid keys: %v", userconfig.Keys),
		Args:      cobra.MatchAll(cobra.ExactArgs(2), settingKeyArg),
		ValidArgs: userconfig.Keys,
		RunE:      runConfigSetCommand,
	}
}

func settingKeyArg(cmd *cobra.Command, args []string) error {
	if !userconfig.IsKey(args[0]) {
		return fmt.Errorf("invalid argument %q for %q (valid keys: %v)", args[0], cmd.CommandPath(), userconfig.Keys)
	}
	return nil
}

func runConfigShowCommand(cmd *cobra.Command, _ []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())

	config, err := userconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.MarshalWithOptions(config, yaml.IndentSequence(true), yaml.UseSingleQuote(false))
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}

	out.Print(string(data))
	return nil
}

func runConfigPathCommand(cmd *cobra.Command, _ []string) error {
	out := cli.NewPrinter(cmd.OutOrStdout())
	out.Println(userconfig.Path())
	return nil
}

func runConfigSetCommand(cmd *cobra.Command, args []string) error {
	config, err := userconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Set(args[0], args[1]); err != nil {
		return err
	}

	if err := config.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cli.NewPrinter(cmd.OutOrStdout()).Printf("%s set to %s\n", args[0], args[1])
	return nil
}
