// Package actions implements the action bar shown under an answer:
// rewrite, copy, copy as plain text and edit.
package actions

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action identifies a button on the bar.
type Action int

const (
	Rewrite Action = iota
	Copy
	CopyPlain
	Edit
)

func (a Action) String() string {
	switch a {
	case Rewrite:
		return "rewrite"
	case Copy:
		return "copy"
	case CopyPlain:
		return "copy-plain"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// RewriteRequestedMsg asks the container to regenerate the answer.
type RewriteRequestedMsg struct{}

// EditRequestedMsg asks the container to edit the query.
type EditRequestedMsg struct{}

// CopiedMsg reports the outcome of a clipboard write.
type CopiedMsg struct {
	Action Action
	Method string
	Err    error
}

// TextFunc returns text on demand when a copy action runs.
type TextFunc func() string

// Copier writes text to a clipboard and names the method used.
type Copier interface {
	Copy(text string) (string, error)
}

// KeyMap defines the bar's key bindings.
type KeyMap struct {
	Rewrite   key.Binding
	Copy      key.Binding
	CopyPlain key.Binding
	Edit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rewrite:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rewrite")),
		Copy:      key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy")),
		CopyPlain: key.NewBinding(key.WithKeys("p", "Y"), key.WithHelp("p", "copy plain")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	}
}

// Styles for the bar.
type Styles struct {
	Button lipgloss.Style
	Copied lipgloss.Style
	Hint   lipgloss.Style
}

// DefaultStyles returns the default bar styles.
func DefaultStyles() Styles {
	return Styles{
		Button: lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5")),
		Copied: lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")).Bold(true),
		Hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
	}
}

// Bar is the action bar model.
type Bar struct {
	KeyMap KeyMap
	Styles Styles
	Width  int

	copier    Copier
	text      TextFunc
	plainText TextFunc
	logger    *slog.Logger

	copy      Indicator
	copyPlain Indicator
}

// Option configures a Bar.
type Option func(*Bar)

// WithResetDelay sets how long the copied state lasts.
func WithResetDelay(d time.Duration) Option {
	return func(b *Bar) {
		b.copy = NewIndicator(d)
		b.copyPlain = NewIndicator(d)
	}
}

// WithLogger sets the logger for clipboard failures.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bar) { b.logger = logger }
}

// WithStyles sets the bar styles.
func WithStyles(s Styles) Option {
	return func(b *Bar) { b.Styles = s }
}

// New creates a bar. text and plainText are called when a copy runs.
func New(copier Copier, text, plainText TextFunc, opts ...Option) Bar {
	b := Bar{
		KeyMap:    DefaultKeyMap(),
		Styles:    DefaultStyles(),
		copier:    copier,
		text:      text,
		plainText: plainText,
		copy:      NewIndicator(DefaultResetDelay),
		copyPlain: NewIndicator(DefaultResetDelay),
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// SetText replaces the accessors used by copy actions.
func (b *Bar) SetText(text, plainText TextFunc) {
	b.text = text
	b.plainText = plainText
}

// Copied reports whether the copy button shows its copied state.
func (b Bar) Copied() bool {
	return b.copy.State() == JustCopied
}

// CopiedPlain reports whether the copy-plain button shows its copied state.
func (b Bar) CopiedPlain() bool {
	return b.copyPlain.State() == JustCopied
}

// Press runs an action.
func (b Bar) Press(a Action) (Bar, tea.Cmd) {
	switch a {
	case Rewrite:
		return b, func() tea.Msg { return RewriteRequestedMsg{} }
	case Edit:
		return b, func() tea.Msg { return EditRequestedMsg{} }
	case Copy:
		var tick tea.Cmd
		b.copy, tick = b.copy.Trigger()
		return b, tea.Batch(b.write(Copy, b.text), tick)
	case CopyPlain:
		var tick tea.Cmd
		b.copyPlain, tick = b.copyPlain.Trigger()
		return b, tea.Batch(b.write(CopyPlain, b.plainText), tick)
	}
	return b, nil
}

func (b Bar) write(a Action, text TextFunc) tea.Cmd {
	copier := b.copier
	return func() tea.Msg {
		if copier == nil {
			return CopiedMsg{Action: a}
		}
		var s string
		if text != nil {
			s = text()
		}
		method, err := copier.Copy(s)
		return CopiedMsg{Action: a, Method: method, Err: err}
	}
}

// Update handles key presses, resets and copy results.
func (b Bar) Update(msg tea.Msg) (Bar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.KeyMap.Rewrite):
			return b.Press(Rewrite)
		case key.Matches(msg, b.KeyMap.Copy):
			return b.Press(Copy)
		case key.Matches(msg, b.KeyMap.CopyPlain):
			return b.Press(CopyPlain)
		case key.Matches(msg, b.KeyMap.Edit):
			return b.Press(Edit)
		}

	case resetMsg:
		b.copy = b.copy.Update(msg)
		b.copyPlain = b.copyPlain.Update(msg)

	case CopiedMsg:
		// Failures are logged only; the button still shows the copied state.
		if msg.Err != nil {
			b.logger.Error("failed to copy text", "action", msg.Action.String(), "error", msg.Err)
		}
	}
	return b, nil
}

// View renders the bar with rewrite on the left and the copy and edit
// buttons on the right.
func (b Bar) View() string {
	left := b.Styles.Button.Render("↻ Rewrite") + b.Styles.Hint.Render(" (r)")

	copyIcon := b.Styles.Button.Render("⧉ Copy")
	if b.Copied() {
		copyIcon = b.Styles.Copied.Render("✓ Copied")
	}
	plainIcon := b.Styles.Button.Render("⧉ Plain")
	if b.CopiedPlain() {
		plainIcon = b.Styles.Copied.Render("✓ Plain")
	}
	right := strings.Join([]string{
		copyIcon + b.Styles.Hint.Render(" (c)"),
		plainIcon + b.Styles.Hint.Render(" (p)"),
		b.Styles.Button.Render("✎ Edit") + b.Styles.Hint.Render(" (e)"),
	}, "  ")

	gap := b.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

// ShortHelp returns the bar's bindings for a help view.
func (b Bar) ShortHelp() []key.Binding {
	return []key.Binding{b.KeyMap.Rewrite, b.KeyMap.Copy, b.KeyMap.CopyPlain, b.KeyMap.Edit}
}
