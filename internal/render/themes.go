package render

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Markdown style names
const (
	ThemeDark  = styles.DarkStyle
	ThemeLight = styles.LightStyle
	// ThemeCiteview is the dark glamour style recolored with the active TUI theme.
	ThemeCiteview = "citeview"
)

// IsBuiltinStyle returns true if the style is a glamour built-in style or ThemeCiteview.
func IsBuiltinStyle(style string) bool {
	if style == ThemeCiteview {
		return true
	}
	_, ok := styles.DefaultStyles[style]
	return ok
}

// ThemeStyleConfig returns the dark glamour style recolored with theme.
func ThemeStyleConfig(theme TUITheme) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig

	text := string(theme.Text)
	primary := string(theme.Primary)
	accent := string(theme.Accent)
	warning := string(theme.Warning)
	dim := string(theme.TextDim)

	cfg.Document.Color = &text
	cfg.Heading.Color = &accent
	cfg.Link.Color = &dim
	cfg.LinkText.Color = &primary
	cfg.Code.Color = &warning
	cfg.HorizontalRule.Color = &dim
	cfg.BlockQuote.Color = &dim

	return cfg
}

// ThemeInfo contains information about a theme for display purposes.
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableThemes returns the markdown styles accepted by Options.Style.
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{Name: ThemeDark, Description: "Dark theme (default)"},
		{Name: ThemeCiteview, Description: "Dark theme using the TUI color theme"},
		{Name: ThemeLight, Description: "Light theme for bright terminals"},
		{Name: styles.DraculaStyle, Description: "Dracula color scheme"},
		{Name: styles.TokyoNightStyle, Description: "Tokyo Night color scheme"},
		{Name: styles.PinkStyle, Description: "Pink accents"},
		{Name: styles.NoTTYStyle, Description: "Plain text (no styling)"},
		{Name: styles.AsciiStyle, Description: "ASCII-only output"},
	}
}

// ThemeNames returns just the theme names for selection.
func ThemeNames() []string {
	themes := AvailableThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
