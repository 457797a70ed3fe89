// Package tui provides the terminal user interface for citeview.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/citeview/internal/actions"
	"github.com/diogo/citeview/internal/config"
	apperrors "github.com/diogo/citeview/internal/errors"
	"github.com/diogo/citeview/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder    lipgloss.Color
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorSuccess   lipgloss.Color
	colorError     lipgloss.Color
	colorText      lipgloss.Color
	colorTextDim   lipgloss.Color
	colorTextMute  lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	headerStyle   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Answer panel around the viewport
	answerPanelStyle lipgloss.Style

	// Query editor
	inputPanelStyle lipgloss.Style
	inputLabelStyle lipgloss.Style

	loadingStyle lipgloss.Style

	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style

	errorStyle   lipgloss.Style
	successStyle lipgloss.Style

	// Config menu styles
	configHeaderStyle       lipgloss.Style
	configPanelStyle        lipgloss.Style
	configSectionTitleStyle lipgloss.Style
	configMenuItemStyle     lipgloss.Style
	configMenuSelectedStyle lipgloss.Style
	configCursorStyle       lipgloss.Style
	configValueStyle        lipgloss.Style
	configPathStyle         lipgloss.Style
	configFeedbackStyle     lipgloss.Style
)

func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorSuccess = theme.Success
	colorError = theme.Error
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute

	rebuildStyles()
}

func rebuildStyles() {
	headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(colorText)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	answerPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(0, 1)

	inputPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)

	errorStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	successStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)

	configHeaderStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center)

	configPanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	configSectionTitleStyle = lipgloss.NewStyle().
		Foreground(colorSecondary).
		Bold(true)

	configMenuItemStyle = lipgloss.NewStyle().
		Foreground(colorText)

	configMenuSelectedStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	configCursorStyle = lipgloss.NewStyle().
		Foreground(colorAccent)

	configValueStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)

	configPathStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	configFeedbackStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Italic(true).
		MarginTop(1)
}

// barStyles returns action bar styles for the current theme.
func barStyles() actions.Styles {
	return actions.Styles{
		Button: lipgloss.NewStyle().Foreground(colorText),
		Copied: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(colorTextMute),
	}
}

// FormatError returns a styled error message with a hint for known error types.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errStyle.Render(fmt.Sprintf("✗ %v", err)))

	var (
		parseErr  *apperrors.ParseError
		clipErr   *apperrors.ClipboardError
		renderErr *apperrors.RenderError
		configErr *apperrors.ConfigError
	)
	switch {
	case errors.As(err, &parseErr):
		if parseErr.Path != "" {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Field: %s", parseErr.Path)))
		}
		sb.WriteString(dimStyle.Render("\n  Hint: Expected a JSON object with content and sources"))
	case errors.Is(err, apperrors.ErrNoContent):
		sb.WriteString(dimStyle.Render("\n  Hint: The message needs a content field"))
	case errors.As(err, &clipErr):
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Method: %s", clipErr.Method)))
		if errors.Is(err, apperrors.ErrClipboardUnavailable) {
			sb.WriteString(dimStyle.Render("\n  Hint: Install xclip, xsel or wl-clipboard, or use a terminal with OSC 52 support"))
		} else {
			sb.WriteString(dimStyle.Render("\n  Hint: Try 'citeview config set clipboard_fallback_on_error true'"))
		}
	case errors.As(err, &renderErr):
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Stage: %s", renderErr.Stage)))
	case errors.As(err, &configErr):
		sb.WriteString(dimStyle.Render("\n  Keys: " + strings.Join(config.SettableKeys(), ", ")))
	}

	return sb.String()
}

// PrintError prints a styled error message to stderr.
func PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, FormatError(err))
}
