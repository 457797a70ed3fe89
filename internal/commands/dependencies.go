package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/diogo/citeview/internal/actions"
	"github.com/diogo/citeview/internal/clipboard"
	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/models"
	"github.com/diogo/citeview/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunAnswerView(msg models.Message, copier actions.Copier, cfg config.Config, logger *slog.Logger) error
	RunConfig() error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// TUI is the terminal user interface.
	TUI TUIInterface

	// NewCopier builds the clipboard writer for a loaded configuration.
	NewCopier func(cfg config.Config, logger *slog.Logger) actions.Copier

	// LoadConfig reads the user configuration.
	LoadConfig func() (config.Config, error)

	// SaveConfig persists the user configuration.
	SaveConfig func(config.Config) error

	// Stdin is read when no file argument is given.
	Stdin io.Reader

	// TerminalWidth reports the width used when --width is not set.
	TerminalWidth func() int
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunAnswerView(msg models.Message, copier actions.Copier, cfg config.Config, logger *slog.Logger) error {
	return tui.RunAnswerView(msg, copier, cfg, tui.WithLogger(logger))
}

func (d *DefaultTUI) RunConfig() error {
	return tui.RunConfig()
}

// newSystemCopier writes through the system clipboard with OSC 52 as fallback.
func newSystemCopier(cfg config.Config, logger *slog.Logger) actions.Copier {
	return clipboard.New(
		clipboard.WithFallbackOnError(cfg.ClipboardFallbackOnError),
		clipboard.WithLogger(logger),
	)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:           &DefaultTUI{},
		NewCopier:     newSystemCopier,
		LoadConfig:    config.LoadConfig,
		SaveConfig:    config.SaveConfig,
		Stdin:         os.Stdin,
		TerminalWidth: getTerminalWidth,
	}
}
