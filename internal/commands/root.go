// Package commands provides CLI commands for citeview.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/logging"
	"github.com/diogo/citeview/internal/render"
	"github.com/diogo/citeview/internal/tui"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// cliState is shared by the subcommands of one root command.
type cliState struct {
	deps     *Dependencies
	cfg      config.Config
	logger   *slog.Logger
	logLevel string
}

// NewRootCmd builds the citeview command tree. A nil deps uses NewDependencies.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	state := &cliState{
		deps:   deps,
		cfg:    config.DefaultConfig(),
		logger: slog.Default(),
	}

	cmd := &cobra.Command{
		Use:   "citeview",
		Short: "Display assistant answers with numbered citations",
		Long: `citeview renders an assistant answer whose text carries [n] citation
markers. Markers become citation links, and the answer can be copied as
markdown with a reference list or as plain text.

The answer is a JSON document:
  {"query": "...", "content": "...", "sources": [{"title": "...", "url": "..."}]}

Examples:
  citeview render answer.json             Render in the terminal
  citeview render --format html answer.json
  cat answer.json | citeview copy --plain Copy plain text
  citeview view answer.json               Interactive answer view
  citeview config                         Configure settings`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(cmd.OutOrStdout(), "citeview %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return cmd.Help()
		},
	}

	cmd.Flags().BoolP("version", "v", false, "Show version")
	cmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCmd(state),
		newCopyCmd(state),
		newViewCmd(state),
		newConfigCmd(state),
	)

	return cmd
}

// setup loads configuration, starts logging and applies the TUI theme.
func (s *cliState) setup(cmd *cobra.Command) error {
	cfg, err := s.deps.LoadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	s.cfg = cfg

	logger, err := logging.Init(cfg, s.logLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
	s.logger = logger

	if !render.ApplyTheme(cfg) {
		logger.Warn("unknown TUI theme, keeping default", "theme", cfg.TUITheme)
	}
	tui.UpdateTheme()

	logger.Debug("command started", "command", cmd.CommandPath(), "version", Version)
	return nil
}

var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.PrintError(err)
		os.Exit(1)
	}
}
