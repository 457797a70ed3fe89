package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/citeview/internal/actions"
	"github.com/diogo/citeview/internal/config"
	"github.com/diogo/citeview/internal/models"
	"github.com/diogo/citeview/internal/render"
)

// streamTickMsg reveals the next group of words. Ticks from an earlier
// stream carry an old generation and are dropped.
type streamTickMsg struct {
	gen int
}

// Model is the interactive answer view. It plays the message content back
// as a stream, re-rendering the answer on every update.
type Model struct {
	msg    models.Message
	logger *slog.Logger

	// Stream state
	tokens       []string
	revealed     int
	streaming    bool
	streamGen    int
	interval     time.Duration
	wordsPerTick int
	resetDelay   time.Duration

	renderer *render.AnswerRenderer
	answer   *render.Answer
	err      error

	// UI components
	viewport viewport.Model
	spinner  spinner.Model
	editor   textarea.Model
	bar      actions.Bar
	quitKeys key.Binding

	editing bool
	status  string

	width  int
	height int
	ready  bool
}

// Option configures a Model.
type Option func(*Model)

// WithConfig applies stream timing and the copy reset delay from cfg.
func WithConfig(cfg config.Config) Option {
	return func(m *Model) {
		m.interval = cfg.StreamInterval()
		m.wordsPerTick = cfg.WordsPerTick()
		m.resetDelay = cfg.CopyResetDelay()
	}
}

// WithLogger sets the logger used by the view and its action bar.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// WithoutStreaming shows the whole answer at once.
func WithoutStreaming() Option {
	return func(m *Model) {
		m.revealed = len(m.tokens)
		m.streaming = false
	}
}

// WithRenderer sets the answer renderer.
func WithRenderer(r *render.AnswerRenderer) Option {
	return func(m *Model) { m.renderer = r }
}

// NewModel creates an answer view for msg. Copy actions write through copier.
func NewModel(msg models.Message, copier actions.Copier, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = "Edit the question..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	m := Model{
		msg:          msg,
		logger:       slog.Default(),
		tokens:       tokenize(msg.Content),
		streaming:    true,
		streamGen:    1,
		interval:     config.DefaultConfig().StreamInterval(),
		wordsPerTick: config.DefaultConfig().WordsPerTick(),
		resetDelay:   actions.DefaultResetDelay,
		renderer:     render.NewAnswerRenderer(nil),
		viewport:     viewport.New(0, 0),
		spinner:      s,
		editor:       ta,
		quitKeys:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.bar = actions.New(copier, nil, nil,
		actions.WithResetDelay(m.resetDelay),
		actions.WithLogger(m.logger),
		actions.WithStyles(barStyles()),
	)
	if len(m.tokens) == 0 {
		m.streaming = false
	}
	m.refresh()
	return m
}

// tokenize splits content after each space so joining a prefix of the
// tokens reproduces a prefix of the content.
func tokenize(content string) []string {
	if content == "" {
		return nil
	}
	return strings.SplitAfter(content, " ")
}

// Init starts the stream.
func (m Model) Init() tea.Cmd {
	if !m.streaming {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.streamTick())
}

func (m Model) streamTick() tea.Cmd {
	gen := m.streamGen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return streamTickMsg{gen: gen}
	})
}

// restart plays the answer again from the beginning.
func (m Model) restart() (Model, tea.Cmd) {
	m.streamGen++
	m.revealed = 0
	m.streaming = len(m.tokens) > 0
	m.answer = nil
	m.status = ""
	m.refresh()
	if !m.streaming {
		return m, nil
	}
	m.logger.Debug("restarting answer stream", "words", len(m.tokens))
	return m, tea.Batch(m.spinner.Tick, m.streamTick())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		if key.Matches(msg, m.quitKeys) {
			return m, tea.Quit
		}
		if !m.streaming {
			m.bar, cmd = m.bar.Update(msg)
			cmds = append(cmds, cmd)
		}
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case streamTickMsg:
		if msg.gen != m.streamGen || !m.streaming {
			return m, nil
		}
		m.revealed = min(m.revealed+m.wordsPerTick, len(m.tokens))
		if m.revealed == len(m.tokens) {
			m.streaming = false
		}
		m.refresh()
		if m.streaming {
			return m, m.streamTick()
		}
		return m, nil

	case spinner.TickMsg:
		if m.streaming {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case actions.RewriteRequestedMsg:
		return m.restart()

	case actions.EditRequestedMsg:
		m.editing = true
		m.editor.SetValue(m.msg.Query)
		m.editor.CursorEnd()
		m.layout()
		cmd = m.editor.Focus()
		return m, tea.Batch(cmd, textarea.Blink)

	case actions.CopiedMsg:
		// The bar logs failures; the view keeps its status.
		if msg.Err == nil {
			m.status = successStyle.Render(fmt.Sprintf("Copied %s via %s", copiedWhat(msg.Action), msg.Method))
		}
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd
	}

	// Everything else (reset timers, mouse) goes to the bar and viewport.
	m.bar, cmd = m.bar.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	if m.editing {
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.editor.Blur()
		m.layout()
		return m, nil
	case "enter":
		if query := strings.TrimSpace(m.editor.Value()); query != "" {
			m.msg = m.msg.WithQuery(query)
			m.logger.Info("query edited", "query", query)
		}
		m.editing = false
		m.editor.Blur()
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func copiedWhat(a actions.Action) string {
	if a == actions.CopyPlain {
		return "plain text"
	}
	return "answer"
}

// layout sizes the viewport, editor and bar from the window size.
func (m *Model) layout() {
	contentWidth := max(m.width-2, 20)

	headerHeight := lipgloss.Height(m.renderHeader(contentWidth))
	footerHeight := 3 // bar, status and padding
	borders := 2

	vpHeight := max(m.height-headerHeight-footerHeight-borders, 3)
	m.viewport.Width = contentWidth - 4
	m.viewport.Height = vpHeight
	m.editor.SetWidth(contentWidth - 4)
	m.bar.Width = contentWidth - 2
}

// refresh re-renders the revealed part of the answer into the viewport.
func (m *Model) refresh() {
	shown := m.msg.WithContent(strings.Join(m.tokens[:m.revealed], ""))
	prev := 0
	if m.answer != nil {
		prev = m.answer.RevealCount()
	}

	answer, err := m.renderer.Render(shown, m.streaming)
	if err != nil {
		m.err = err
		m.logger.Error("failed to render answer", "error", err)
		return
	}
	m.err = nil
	m.answer = answer
	m.bar.SetText(answer.Result.Text, answer.Result.PlainText)

	if !m.ready {
		return
	}
	opts := render.TerminalOptionsFor(render.GetTUITheme(), m.viewport.Width)
	if m.streaming {
		opts.FadeFrom = prev
	}
	m.viewport.SetContent(answer.Terminal(opts))
	if m.streaming {
		m.viewport.GotoBottom()
	}
}

// Streaming reports whether the answer is still being revealed.
func (m Model) Streaming() bool {
	return m.streaming
}

// Query returns the current question.
func (m Model) Query() string {
	return m.msg.Query
}

// Answer returns the last rendered answer.
func (m Model) Answer() *render.Answer {
	return m.answer
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := max(m.width-2, 20)
	sections := []string{m.renderHeader(contentWidth)}

	sections = append(sections, answerPanelStyle.
		Width(contentWidth).
		Render(m.viewport.View()))

	if m.streaming {
		progress := fmt.Sprintf(" Streaming %d/%d words", m.revealed, len(m.tokens))
		sections = append(sections, statusBarStyle.Render(m.spinner.View()+loadingStyle.Render(progress)))
	} else {
		sections = append(sections, statusBarStyle.Render(m.bar.View()))
	}

	switch {
	case m.err != nil:
		sections = append(sections, statusBarStyle.Render(FormatError(m.err)))
	case m.status != "":
		sections = append(sections, statusBarStyle.Render(m.status))
	default:
		sections = append(sections, m.renderHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	if m.editing {
		content := lipgloss.JoinVertical(lipgloss.Left,
			inputLabelStyle.Render("✎ Edit question"),
			m.editor.View(),
			hintStyle.Render("enter save • esc cancel"),
		)
		return inputPanelStyle.Width(width).Render(content)
	}

	query := m.msg.Query
	if query == "" {
		query = "(no question)"
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("✦ citeview"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(query),
	)
	return headerStyle.Width(width).Render(content)
}

func (m Model) renderHelp() string {
	shortcuts := []key.Binding{m.quitKeys}
	if !m.streaming {
		shortcuts = append(m.bar.ShortHelp(), m.quitKeys)
	}

	var items []string
	for _, b := range shortcuts {
		items = append(items, statusKeyStyle.Render(b.Help().Key)+statusDescStyle.Render(" "+b.Help().Desc))
	}
	items = append(items, statusKeyStyle.Render("↑↓")+statusDescStyle.Render(" scroll"))
	return statusBarStyle.Render(strings.Join(items, "  │  "))
}

// RunAnswerView runs the answer view until the user quits.
func RunAnswerView(msg models.Message, copier actions.Copier, cfg config.Config, opts ...Option) error {
	opts = append([]Option{WithConfig(cfg)}, opts...)
	p := tea.NewProgram(NewModel(msg, copier, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
