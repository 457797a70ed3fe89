package reveal

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TerminalStyles holds the styles used by RenderTerminal.
type TerminalStyles struct {
	Text     lipgloss.Style
	Fade     lipgloss.Style
	Heading  lipgloss.Style
	Strong   lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Citation lipgloss.Style
	Bullet   lipgloss.Style
	Quote    lipgloss.Style
}

// DefaultTerminalStyles returns a neutral style set.
func DefaultTerminalStyles() TerminalStyles {
	return TerminalStyles{
		Text:     lipgloss.NewStyle(),
		Fade:     lipgloss.NewStyle().Faint(true),
		Heading:  lipgloss.NewStyle().Bold(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68")),
		Link:     lipgloss.NewStyle().Underline(true),
		Citation: lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")),
		Bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#565f89")),
	}
}

// TerminalOptions configures RenderTerminal.
type TerminalOptions struct {
	// Width wraps the output when positive.
	Width int
	// FadeFrom is the ordinal of the first reveal span drawn with the Fade
	// style. Spans before it are settled. A negative value disables fading.
	FadeFrom int
	Styles   TerminalStyles
}

// DefaultTerminalOptions returns options with default styles and no fading.
func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{
		FadeFrom: -1,
		Styles:   DefaultTerminalStyles(),
	}
}

type inline struct {
	strong   bool
	emphasis bool
	code     bool
	link     bool
	citation bool
	fade     bool
	heading  bool
	quote    bool
	pre      bool
}

type termRenderer struct {
	opts    TerminalOptions
	sb      strings.Builder
	reveals int
}

// RenderTerminal renders a tree as styled terminal text.
func RenderTerminal(n Node, opts TerminalOptions) string {
	r := &termRenderer{opts: opts}
	r.render(n, inline{})

	lines := strings.Split(strings.TrimRight(r.sb.String(), "\n"), "\n")
	for i, line := range lines {
		// chunks end in a space
		lines[i] = strings.TrimRight(line, " ")
	}
	out := strings.Join(lines, "\n")
	if opts.Width > 0 {
		out = lipgloss.NewStyle().Width(opts.Width).Render(out)
	}
	return out
}

func (r *termRenderer) render(n Node, st inline) {
	switch v := n.(type) {
	case *Text:
		if v != nil {
			r.text(v.Value, st)
		}
	case *List:
		if v != nil {
			for _, item := range v.Items {
				r.render(item, st)
			}
		}
	case *Element:
		if v != nil {
			r.element(v, st)
		}
	}
}

func (r *termRenderer) children(e *Element, st inline) {
	for _, c := range e.Children {
		r.render(c, st)
	}
}

func (r *termRenderer) element(e *Element, st inline) {
	switch e.Tag {
	case "p":
		r.children(e, st)
		r.endBlock()

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(e.Tag[1:])
		r.sb.WriteString(r.opts.Styles.Heading.Render(strings.Repeat("#", level) + " "))
		st.heading = true
		r.children(e, st)
		r.endBlock()

	case "ul", "ol":
		ordinal := 0
		for _, c := range e.Children {
			item, ok := c.(*Element)
			if !ok || item == nil || item.Tag != "li" {
				continue
			}
			ordinal++
			bullet := "• "
			if e.Tag == "ol" {
				bullet = strconv.Itoa(ordinal) + ". "
			}
			r.sb.WriteString(r.opts.Styles.Bullet.Render(bullet))
			r.children(item, st)
			r.newline()
		}
		r.endBlock()

	case "li":
		// li outside a list, as produced by a bare Transform(..., "li")
		r.sb.WriteString(r.opts.Styles.Bullet.Render("• "))
		r.children(e, st)
		r.newline()

	case "pre":
		st.pre = true
		st.code = true
		r.children(e, st)
		r.endBlock()

	case "blockquote":
		st.quote = true
		r.sb.WriteString(r.opts.Styles.Quote.Render("│ "))
		r.children(e, st)
		r.endBlock()

	case "br":
		r.sb.WriteString("\n")

	case "hr":
		r.sb.WriteString(r.opts.Styles.Bullet.Render("───"))
		r.endBlock()

	case "strong", "b":
		st.strong = true
		r.children(e, st)

	case "em", "i":
		st.emphasis = true
		r.children(e, st)

	case "code":
		st.code = true
		r.children(e, st)

	case "a":
		href, _ := e.Attr("href")
		if e.HasClass("citation") {
			st.citation = true
		} else {
			st.link = true
		}
		if href != "" {
			r.sb.WriteString(ansi.SetHyperlink(href))
		}
		if st.citation {
			r.sb.WriteString(r.opts.Styles.Citation.Render("["))
			r.children(e, st)
			r.sb.WriteString(r.opts.Styles.Citation.Render("]"))
		} else {
			r.children(e, st)
		}
		if href != "" {
			r.sb.WriteString(ansi.ResetHyperlink())
		}

	case "span":
		if e.HasClass(RevealClass) {
			if r.opts.FadeFrom >= 0 && r.reveals >= r.opts.FadeFrom {
				st.fade = true
			}
			r.reveals++
		}
		r.children(e, st)

	default:
		r.children(e, st)
	}
}

func (r *termRenderer) text(s string, st inline) {
	if !st.pre {
		if strings.TrimSpace(s) == "" && r.atLineStart() {
			return
		}
		s = strings.ReplaceAll(s, "\n", " ")
	}
	if st.citation {
		// Streaming chunks end in a space; the badge must stay [N].
		s = strings.TrimRight(s, " ")
	}
	if s == "" {
		return
	}

	style := r.opts.Styles.Text
	switch {
	case st.citation:
		style = r.opts.Styles.Citation
	case st.code:
		style = r.opts.Styles.Code
	case st.link:
		style = r.opts.Styles.Link
	case st.heading:
		style = r.opts.Styles.Heading
	case st.quote:
		style = r.opts.Styles.Quote
	}
	if st.strong {
		style = style.Inherit(r.opts.Styles.Strong)
	}
	if st.emphasis {
		style = style.Inherit(r.opts.Styles.Emphasis)
	}
	if st.fade {
		style = r.opts.Styles.Fade.Inherit(style)
	}

	if st.pre {
		// Render line by line so styles do not pad multi-line blocks.
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if i > 0 {
				r.sb.WriteString("\n")
			}
			if line != "" {
				r.sb.WriteString(style.Render(line))
			}
		}
		return
	}
	r.sb.WriteString(style.Render(s))
}

func (r *termRenderer) atLineStart() bool {
	out := r.sb.String()
	return out == "" || strings.HasSuffix(out, "\n")
}

func (r *termRenderer) newline() {
	if !r.atLineStart() {
		r.sb.WriteString("\n")
	}
}

func (r *termRenderer) endBlock() {
	r.newline()
	if !strings.HasSuffix(r.sb.String(), "\n\n") && r.sb.Len() > 0 {
		r.sb.WriteString("\n")
	}
}
