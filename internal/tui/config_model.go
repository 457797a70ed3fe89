package tui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewThemeSelect    // Markdown theme
	viewTUIThemeSelect // TUI color theme
)

// Menu item indices for main view
const (
	menuTheme = iota
	menuTUITheme
	menuCopyReset
	menuStreamSpeed
	menuClipboardFallback
	menuLogLevel
	menuExit
	menuItemCount
)

// Values cycled through by the main menu.
var (
	copyResetChoices   = []int{500, 1000, 2000, 3000}
	streamSpeedChoices = []int{1, 2, 3, 5, 8}
	logLevelChoices    = []string{"debug", "info", "warn", "error"}
)

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// ConfigModel is the interactive settings editor.
type ConfigModel struct {
	config    config.Config
	configDir string
	save      func(config.Config) error

	// Navigation
	view           configView
	cursor         int
	themeCursor    int
	tuiThemeCursor int

	feedback        string
	feedbackTimeout time.Duration

	width  int
	height int
	ready  bool
}

// NewConfigModel loads the user configuration into a settings editor.
func NewConfigModel() ConfigModel {
	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	configDir, _ := config.GetConfigDir()
	return newConfigModel(cfg, configDir, config.SaveConfig)
}

func newConfigModel(cfg config.Config, configDir string, save func(config.Config) error) ConfigModel {
	if cfg.Markdown.Style == "" {
		cfg.Markdown.Style = render.ThemeDark
	}
	if cfg.TUITheme == "" {
		cfg.TUITheme = render.TokyoNightTheme.Name
	}

	return ConfigModel{
		config:          cfg,
		configDir:       configDir,
		save:            save,
		view:            viewMain,
		themeCursor:     max(slices.Index(render.ThemeNames(), cfg.Markdown.Style), 0),
		tuiThemeCursor:  max(slices.Index(render.TUIThemeNames(), cfg.TUITheme), 0),
		feedbackTimeout: 2 * time.Second,
	}
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.view != viewMain {
				m.view = viewMain
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			m.move(-1)

		case "down", "j":
			m.move(1)

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

// move moves the cursor of the current view, wrapping at both ends.
func (m *ConfigModel) move(delta int) {
	wrap := func(v, n int) int { return ((v+delta)%n + n) % n }
	switch m.view {
	case viewMain:
		m.cursor = wrap(m.cursor, menuItemCount)
	case viewThemeSelect:
		m.themeCursor = wrap(m.themeCursor, len(render.ThemeNames()))
	case viewTUIThemeSelect:
		m.tuiThemeCursor = wrap(m.tuiThemeCursor, len(render.TUIThemeNames()))
	}
}

// next returns the choice after current, or the first one.
func next[T comparable](choices []T, current T) T {
	i := slices.Index(choices, current)
	return choices[(i+1)%len(choices)]
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewThemeSelect:
		m.config.Markdown.Style = render.ThemeNames()[m.themeCursor]
		m.view = viewMain
		return m.persist(fmt.Sprintf("Markdown theme set to %s", m.config.Markdown.Style))

	case viewTUIThemeSelect:
		selected := render.TUIThemeNames()[m.tuiThemeCursor]
		m.config.TUITheme = selected
		render.SetTUITheme(selected)
		UpdateTheme()
		m.view = viewMain
		return m.persist(fmt.Sprintf("TUI theme set to %s", selected))
	}

	switch m.cursor {
	case menuTheme:
		m.view = viewThemeSelect
		return m, nil

	case menuTUITheme:
		m.view = viewTUIThemeSelect
		return m, nil

	case menuCopyReset:
		m.config.CopyResetMillis = next(copyResetChoices, m.config.CopyResetMillis)
		return m.persist(fmt.Sprintf("Copied indicator lasts %s", m.config.CopyResetDelay()))

	case menuStreamSpeed:
		m.config.StreamWordsPerTick = next(streamSpeedChoices, m.config.WordsPerTick())
		return m.persist(fmt.Sprintf("Streaming %d words per tick", m.config.StreamWordsPerTick))

	case menuClipboardFallback:
		m.config.ClipboardFallbackOnError = !m.config.ClipboardFallbackOnError
		return m.persist(fmt.Sprintf("OSC 52 fallback on error %s", enabledText(m.config.ClipboardFallbackOnError)))

	case menuLogLevel:
		m.config.Log.Level = next(logLevelChoices, m.config.Log.Level)
		return m.persist(fmt.Sprintf("Log level set to %s", m.config.Log.Level))

	case menuExit:
		return m, tea.Quit
	}

	return m, nil
}

// persist saves the configuration and shows feedback.
func (m ConfigModel) persist(feedback string) (tea.Model, tea.Cmd) {
	if err := m.save(m.config); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
	} else {
		m.feedback = feedback
	}
	return m, clearFeedback(m.feedbackTimeout)
}

func enabledText(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := max(m.width-4, 40)

	var sections []string
	sections = append(sections, configHeaderStyle.Width(contentWidth).Render("✦ citeview settings"))

	paths := lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("Paths"),
		"   Config: "+configPathStyle.Render(filepath.Join(m.configDir, "config.json")),
		"   Log:    "+configPathStyle.Render(config.GetLogPath(m.config)),
	)
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(paths))

	var settings string
	switch m.view {
	case viewThemeSelect:
		settings = m.renderChoices("Select Markdown Theme", themeLabels(render.AvailableThemes()), m.themeCursor, slices.Index(render.ThemeNames(), m.config.Markdown.Style))
	case viewTUIThemeSelect:
		var labels []string
		for _, t := range render.AvailableTUIThemes() {
			labels = append(labels, fmt.Sprintf("%s - %s", t.Name, t.Description))
		}
		settings = m.renderChoices("Select TUI Theme", labels, m.tuiThemeCursor, slices.Index(render.TUIThemeNames(), m.config.TUITheme))
	default:
		settings = m.renderMainMenu()
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(settings))

	if m.feedback != "" {
		sections = append(sections, configFeedbackStyle.Render("✓ "+m.feedback))
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func themeLabels(themes []render.ThemeInfo) []string {
	labels := make([]string, len(themes))
	for i, t := range themes {
		labels[i] = fmt.Sprintf("%s - %s", t.Name, t.Description)
	}
	return labels
}

// renderMainMenu renders the settings list with current values aligned.
func (m ConfigModel) renderMainMenu() string {
	rows := []struct {
		label string
		value string
	}{
		{"Markdown Theme", m.config.Markdown.Style},
		{"TUI Theme", m.config.TUITheme},
		{"Copied Indicator", m.config.CopyResetDelay().String()},
		{"Stream Speed", strconv.Itoa(m.config.WordsPerTick()) + " words/tick"},
		{"OSC 52 On Error", enabledText(m.config.ClipboardFallbackOnError)},
		{"Log Level", m.config.Log.Level},
	}

	items := []string{configSectionTitleStyle.Render("Settings"), ""}
	for i, row := range rows {
		label := fmt.Sprintf("%-18s", row.label)
		items = append(items, m.cursorFor(i)+m.itemStyle(i).Render(label)+configValueStyle.Render(row.value))
	}
	items = append(items, "", m.cursorFor(menuExit)+m.itemStyle(menuExit).Render("Exit"))

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (m ConfigModel) cursorFor(i int) string {
	if m.cursor == i {
		return configCursorStyle.Render("▸ ")
	}
	return "  "
}

func (m ConfigModel) itemStyle(i int) lipgloss.Style {
	if m.cursor == i {
		return configMenuSelectedStyle
	}
	return configMenuItemStyle
}

// renderChoices renders a selection sub-menu.
func (m ConfigModel) renderChoices(title string, labels []string, cursor, current int) string {
	items := []string{configSectionTitleStyle.Render(title), ""}
	for i, label := range labels {
		prefix := "  "
		style := configMenuItemStyle
		if i == cursor {
			prefix = configCursorStyle.Render("▸ ")
			style = configMenuSelectedStyle
		}
		suffix := ""
		if i == current {
			suffix = successStyle.Render(" (current)")
		}
		items = append(items, prefix+style.Render(label)+suffix)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view != viewMain {
		back = "Back"
	}
	shortcuts := [][2]string{{"↑↓", "Navigate"}, {"Enter", "Select"}, {"Esc", back}}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s[0])+statusDescStyle.Render(" "+s[1]))
	}
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the config TUI
func RunConfig() error {
	p := tea.NewProgram(NewConfigModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
