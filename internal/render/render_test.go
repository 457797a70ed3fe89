package render

import (
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != ThemeDark {
		t.Errorf("expected Style=%q, got %s", ThemeDark, opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines || !opts.TableWrap {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestOptionsChaining(t *testing.T) {
	base := DefaultOptions()
	opts := base.
		WithWidth(100).
		WithStyle(ThemeLight).
		WithEmoji(false).
		WithPreserveNewLines(false)

	if opts.Width != 100 || opts.Style != ThemeLight || opts.EnableEmoji || opts.PreserveNewLines {
		t.Errorf("chained options not applied: %+v", opts)
	}
	if base.Width != 80 {
		t.Error("With* methods must not modify the receiver")
	}
}

func TestMarkdownRichCopy(t *testing.T) {
	rich := "## Overview\n\nGo is fast [\\[1\\]](https://go.dev).\n\n[1] [Go](https://go.dev)\n"

	tests := []struct {
		name     string
		width    int
		contains []string
	}{
		{"heading and body", 80, []string{"Overview", "fast"}},
		{"reference list", 80, []string{"Go"}},
		{"narrow", 30, []string{"Overview"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Markdown(rich, DefaultOptions().WithWidth(tt.width))
			if err != nil {
				t.Fatalf("Markdown() error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := Markdown("# Answer\n\nThis is a test.", DefaultOptions().WithWidth(60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Answer") || !strings.Contains(out, "test") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestMarkdownEmoji(t *testing.T) {
	input := "Done :smile:"

	out, err := Markdown(input, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, ":smile:") {
		t.Errorf("emoji should have been converted, got: %s", out)
	}

	out, err = Markdown(input, DefaultOptions().WithEmoji(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, ":smile:") {
		t.Errorf("emoji should not have been converted, got: %s", out)
	}
}

func TestMarkdownCiteviewStyle(t *testing.T) {
	defer SetTUITheme("tokyonight")
	defer ClearCache()

	for _, name := range TUIThemeNames() {
		SetTUITheme(name)
		out, err := Markdown("# Title", DefaultOptions().WithStyle(ThemeCiteview))
		if err != nil {
			t.Fatalf("theme %s: %v", name, err)
		}
		if !strings.Contains(out, "Title") {
			t.Errorf("theme %s: unexpected output %q", name, out)
		}
	}
}

func TestMarkdownInvalidStyle(t *testing.T) {
	_, err := Markdown("# Test", DefaultOptions().WithStyle("nonexistent_style_path"))
	if err == nil {
		t.Error("expected error for invalid style path")
	}
}

func TestIsBuiltinStyle(t *testing.T) {
	for _, name := range []string{ThemeDark, ThemeLight, ThemeCiteview} {
		if !IsBuiltinStyle(name) {
			t.Errorf("IsBuiltinStyle(%q) = false", name)
		}
	}
	if IsBuiltinStyle("/tmp/style.json") {
		t.Error("style path should not be builtin")
	}
	for _, name := range ThemeNames() {
		if !IsBuiltinStyle(name) {
			t.Errorf("listed theme %q is not builtin", name)
		}
	}
}

func TestThemeStyleConfig(t *testing.T) {
	cfg := ThemeStyleConfig(DraculaTheme)

	if cfg.Heading.Color == nil || *cfg.Heading.Color != string(DraculaTheme.Accent) {
		t.Errorf("heading color not taken from theme: %v", cfg.Heading.Color)
	}
	if cfg.Code.Color == nil || *cfg.Code.Color != string(DraculaTheme.Warning) {
		t.Errorf("code color not taken from theme: %v", cfg.Code.Color)
	}
}
