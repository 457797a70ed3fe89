package render

import (
	"testing"

	"github.com/diogo/citeview/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	cfg := config.DefaultConfig()
	cfg.Markdown.Style = ThemeLight
	cfg.Markdown.EnableEmoji = false

	opts := OptionsFromConfig(cfg)

	if opts.Style != ThemeLight {
		t.Errorf("Style = %s, want %s", opts.Style, ThemeLight)
	}
	if opts.EnableEmoji {
		t.Error("EnableEmoji should follow config")
	}
	if opts.Width != 80 {
		t.Errorf("Width = %d, want default 80", opts.Width)
	}
}

func TestOptionsFromConfig_EmptyStyleKeepsDefault(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "")

	cfg := config.DefaultConfig()
	cfg.Markdown.Style = ""

	if got := OptionsFromConfig(cfg).Style; got != ThemeDark {
		t.Errorf("Style = %s, want %s", got, ThemeDark)
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", ThemeLight)

	if got := OptionsFromConfig(config.DefaultConfig()).Style; got != ThemeLight {
		t.Errorf("Style = %s, want %s from env", got, ThemeLight)
	}
}

func TestLoadOptionsFromConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GLAMOUR_STYLE", "")

	opts := LoadOptionsFromConfig()

	out, err := Markdown("# Test", opts)
	if err != nil {
		t.Fatalf("Markdown render failed with loaded options: %v", err)
	}
	if out == "" {
		t.Error("expected non-empty output")
	}
}

func TestApplyTheme(t *testing.T) {
	defer SetTUITheme("tokyonight")

	tests := []struct {
		name   string
		cfg    string
		env    string
		wantOK bool
		want   string
	}{
		{"config theme", "nord", "", true, "nord"},
		{"env wins", "nord", "dracula", true, "dracula"},
		{"empty keeps current", "", "", true, "tokyonight"},
		{"unknown keeps current", "solarized", "", false, "tokyonight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTUITheme("tokyonight")
			t.Setenv("CITEVIEW_THEME", tt.env)

			cfg := config.DefaultConfig()
			cfg.TUITheme = tt.cfg

			if ok := ApplyTheme(cfg); ok != tt.wantOK {
				t.Errorf("ApplyTheme() = %v, want %v", ok, tt.wantOK)
			}
			if got := GetTUITheme().Name; got != tt.want {
				t.Errorf("theme = %s, want %s", got, tt.want)
			}
		})
	}
}
