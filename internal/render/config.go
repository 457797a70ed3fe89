package render

import (
	"os"

	"github.com/diogo/citeview/internal/config"
)

// OptionsFromConfig builds render options from a loaded configuration.
// GLAMOUR_STYLE takes precedence over the configured style.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()

	md := cfg.Markdown
	if md.Style != "" {
		opts.Style = md.Style
	}
	opts.EnableEmoji = md.EnableEmoji
	opts.PreserveNewLines = md.PreserveNewLines
	opts.TableWrap = md.TableWrap
	opts.InlineTableLinks = md.InlineTableLinks

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts.Style = style
	}

	return opts
}

// LoadOptionsFromConfig loads render options from the user configuration file.
func LoadOptionsFromConfig() Options {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return OptionsFromConfig(cfg)
}

// ApplyTheme activates the configured TUI theme. CITEVIEW_THEME takes
// precedence. Unknown names keep the current theme and return false.
func ApplyTheme(cfg config.Config) bool {
	name := cfg.TUITheme
	if env := os.Getenv("CITEVIEW_THEME"); env != "" {
		name = env
	}
	if name == "" {
		return true
	}
	return SetTUITheme(name)
}
