package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/render"
)

type savedConfigs struct {
	saved []config.Config
	err   error
}

func (s *savedConfigs) save(cfg config.Config) error {
	s.saved = append(s.saved, cfg)
	return s.err
}

func (s *savedConfigs) last() config.Config {
	return s.saved[len(s.saved)-1]
}

func newTestConfigModel(store *savedConfigs) ConfigModel {
	return newConfigModel(config.DefaultConfig(), "/home/test/.citeview", store.save)
}

func updateConfig(t *testing.T, m ConfigModel, msg tea.Msg) (ConfigModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ConfigModel)
	if !ok {
		t.Fatalf("Update returned %T, want ConfigModel", next)
	}
	return model, cmd
}

func selectItem(t *testing.T, m ConfigModel, item int) (ConfigModel, tea.Cmd) {
	t.Helper()
	m.cursor = item
	return updateConfig(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestNewConfigModel_Cursors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Markdown.Style = render.ThemeLight
	cfg.TUITheme = "nord"

	m := newConfigModel(cfg, "/tmp", (&savedConfigs{}).save)

	if got := render.ThemeNames()[m.themeCursor]; got != render.ThemeLight {
		t.Errorf("theme cursor on %s, want %s", got, render.ThemeLight)
	}
	if got := render.TUIThemeNames()[m.tuiThemeCursor]; got != "nord" {
		t.Errorf("TUI theme cursor on %s, want nord", got)
	}
	if m.Init() != nil {
		t.Error("Init should return nil command")
	}
}

func TestConfigModel_Navigation(t *testing.T) {
	m := newTestConfigModel(&savedConfigs{})

	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != menuItemCount-1 {
		t.Errorf("cursor should wrap to the last item, got %d", m.cursor)
	}
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("cursor should wrap to the first item, got %d", m.cursor)
	}
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 1 {
		t.Errorf("j should move down, got %d", m.cursor)
	}
}

func TestConfigModel_ToggleAndCycle(t *testing.T) {
	store := &savedConfigs{}
	m := newTestConfigModel(store)

	m, cmd := selectItem(t, m, menuClipboardFallback)
	if cmd == nil {
		t.Error("expected feedback clear command")
	}
	if !store.last().ClipboardFallbackOnError {
		t.Error("fallback on error should be saved enabled")
	}
	if !strings.Contains(m.feedback, "enabled") {
		t.Errorf("feedback = %q", m.feedback)
	}

	m, _ = selectItem(t, m, menuCopyReset)
	if store.last().CopyResetMillis != 2000 {
		t.Errorf("CopyResetMillis = %d, want 2000", store.last().CopyResetMillis)
	}

	m, _ = selectItem(t, m, menuStreamSpeed)
	if store.last().StreamWordsPerTick != 5 {
		t.Errorf("StreamWordsPerTick = %d, want 5", store.last().StreamWordsPerTick)
	}

	_, _ = selectItem(t, m, menuLogLevel)
	if store.last().Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", store.last().Log.Level)
	}
}

func TestConfigModel_SelectTUITheme(t *testing.T) {
	defer func() {
		render.SetTUITheme("tokyonight")
		UpdateTheme()
	}()

	store := &savedConfigs{}
	m := newTestConfigModel(store)

	m, _ = selectItem(t, m, menuTUITheme)
	if m.view != viewTUIThemeSelect {
		t.Fatalf("view = %v, want TUI theme select", m.view)
	}
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	want := render.TUIThemeNames()[1]
	if m.view != viewMain {
		t.Error("selection should return to the main view")
	}
	if store.last().TUITheme != want {
		t.Errorf("saved TUI theme = %s, want %s", store.last().TUITheme, want)
	}
	if render.GetTUITheme().Name != want {
		t.Errorf("active theme = %s, want %s", render.GetTUITheme().Name, want)
	}
}

func TestConfigModel_SelectMarkdownTheme(t *testing.T) {
	store := &savedConfigs{}
	m := newTestConfigModel(store)

	m, _ = selectItem(t, m, menuTheme)
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	names := render.ThemeNames()
	if got := store.last().Markdown.Style; got != names[len(names)-1] {
		t.Errorf("saved style = %s, want %s", got, names[len(names)-1])
	}
	if !strings.HasPrefix(m.feedback, "Markdown theme set to") {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_SaveError(t *testing.T) {
	m := newTestConfigModel(&savedConfigs{err: errors.New("disk full")})

	m, _ = selectItem(t, m, menuClipboardFallback)

	if m.feedback != "Error: disk full" {
		t.Errorf("feedback = %q", m.feedback)
	}
}

func TestConfigModel_EscAndQuit(t *testing.T) {
	m := newTestConfigModel(&savedConfigs{})

	m, _ = selectItem(t, m, menuTheme)
	m, cmd := updateConfig(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMain || cmd != nil {
		t.Error("esc in a sub-menu should go back")
	}

	_, cmd = updateConfig(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc in the main view should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	_, cmd = selectItem(t, m, menuExit)
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Exit should quit")
	}
}

func TestConfigModel_FeedbackClears(t *testing.T) {
	m := newTestConfigModel(&savedConfigs{})
	m.feedbackTimeout = time.Millisecond

	m, cmd := selectItem(t, m, menuClipboardFallback)
	m, _ = updateConfig(t, m, cmd())

	if m.feedback != "" {
		t.Errorf("feedback should be cleared, got %q", m.feedback)
	}
}

func TestConfigModel_View(t *testing.T) {
	m := newTestConfigModel(&savedConfigs{})
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("expected initializing view before the first resize")
	}

	m, _ = updateConfig(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := ansi.Strip(m.View())
	for _, want := range []string{"citeview settings", "/home/test/.citeview/config.json", "Markdown Theme", "tokyonight", "1s", "disabled"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q:\n%s", want, view)
		}
	}

	m, _ = selectItem(t, m, menuTUITheme)
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "tokyonight - ") || !strings.Contains(view, "(current)") {
		t.Errorf("theme select view incomplete:\n%s", view)
	}
}
