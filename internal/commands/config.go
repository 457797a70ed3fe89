package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/render"
)

func newConfigCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure citeview settings",
		Long: `Open an interactive menu to configure citeview settings.

Subcommands print or change single settings without the menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.deps.TUI.RunConfig()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := json.MarshalIndent(state.cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.GetConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change a single setting",
			Long:  "Change a single setting.\n\nKeys:\n  " + strings.Join(config.SettableKeys(), "\n  "),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return state.setConfig(cmd, args[0], args[1])
			},
		},
	)

	return cmd
}

func (s *cliState) setConfig(cmd *cobra.Command, key, value string) error {
	cfg := s.cfg
	if err := config.Set(&cfg, key, value); err != nil {
		return err
	}
	if key == "tui_theme" {
		if _, ok := render.GetTUIThemeByName(cfg.TUITheme); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown TUI theme %q (available: %s)\n",
				cfg.TUITheme, strings.Join(render.TUIThemeNames(), ", "))
		}
	}
	if err := s.deps.SaveConfig(cfg); err != nil {
		return err
	}
	s.cfg = cfg
	s.logger.Info("config updated", "key", key)

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", key, strings.TrimSpace(value))
	return nil
}
