// Package citation turns answer text with bracketed citation markers into
// its display, rich-copy and plain-copy forms.
package citation

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/diogo/citeview/internal/models"
)

var (
	// markerPattern matches optional leading whitespace followed by [N].
	markerPattern = regexp.MustCompile(`(\s*)\[(\d+)\]`)

	// boldLinePattern matches a line whose entire content is **text**.
	boldLinePattern = regexp.MustCompile(`(?m)^\*\*([^*\n]+)\*\*[ \t]*$`)

	// referencesPattern matches a trailing "References:" section.
	referencesPattern = regexp.MustCompile(`(?ms)^References:.*`)
)

// Result holds the three derived forms of an answer.
type Result struct {
	// Display has markers replaced by citation widgets.
	Display string
	// RichCopy has markers rewritten as markdown links and a reference list appended.
	RichCopy string
	// PlainCopy has markers and the trailing references section removed.
	PlainCopy string
	// Cited lists the resolvable marker numbers in order of first appearance.
	Cited []int
}

// Text returns the rich-copy form. It is the accessor handed to the copy action.
func (r Result) Text() string {
	return r.RichCopy
}

// PlainText returns the plain-copy form.
func (r Result) PlainText() string {
	return r.PlainCopy
}

// Widget renders the inline citation shown in place of a marker.
type Widget interface {
	Citation(number int, url string) string
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(number int, url string) string

// Citation implements Widget.
func (f WidgetFunc) Citation(number int, url string) string {
	return f(number, url)
}

// HTMLWidget renders citations as inline links carrying the citation number.
// The markup survives markdown conversion as raw inline HTML.
type HTMLWidget struct {
	// Class is set on the anchor. Defaults to "citation".
	Class string
}

// Citation implements Widget.
func (w HTMLWidget) Citation(number int, url string) string {
	class := w.Class
	if class == "" {
		class = "citation"
	}
	return fmt.Sprintf(`<a class="%s" href="%s" target="_blank">%d</a>`,
		html.EscapeString(class), html.EscapeString(url), number)
}

// Processor derives display and copy text from answers.
type Processor struct {
	widget Widget
}

// NewProcessor creates a Processor. A nil widget selects HTMLWidget.
func NewProcessor(widget Widget) *Processor {
	if widget == nil {
		widget = HTMLWidget{}
	}
	return &Processor{widget: widget}
}

var defaultProcessor = NewProcessor(nil)

// Process derives all forms of content using the default HTML widget.
func Process(content string, sources []models.Source) Result {
	return defaultProcessor.Process(content, sources)
}

// ProcessMessage is Process applied to a message.
func ProcessMessage(msg models.Message) Result {
	return Process(msg.Content, msg.Sources)
}

// Process derives the display, rich-copy and plain-copy forms of content.
// The result depends only on content and sources.
func (p *Processor) Process(content string, sources []models.Source) Result {
	var cited []int
	seen := make(map[int]bool)

	display := replaceMarkers(content, sources, func(ws string, n int, src models.Source) string {
		if !seen[n] {
			seen[n] = true
			cited = append(cited, n)
		}
		return ws + p.widget.Citation(n, src.URL)
	})

	return Result{
		Display:   display,
		RichCopy:  RichCopy(content, sources),
		PlainCopy: PlainCopy(content),
		Cited:     cited,
	}
}

// RichCopy rewrites [N] as [\[N\]](url), promotes bold-only lines to level-2
// headings and appends a numbered reference list.
func RichCopy(content string, sources []models.Source) string {
	out := replaceMarkers(content, sources, func(ws string, n int, src models.Source) string {
		return fmt.Sprintf(`%s[\[%d\]](%s)`, ws, n, src.URL)
	})

	out = boldLinePattern.ReplaceAllString(out, "## $1")

	refs := make([]string, len(sources))
	for i, src := range sources {
		refs[i] = fmt.Sprintf("[%d] [%s](%s)", i+1, src.Title, src.URL)
	}
	out += "\n\n" + strings.Join(refs, "\n") + "\n"

	return trimTrailingBlankLines(out)
}

// PlainCopy strips every marker and anything from a line starting with
// "References:" to the end.
func PlainCopy(content string) string {
	out := markerPattern.ReplaceAllString(content, "")
	out = referencesPattern.ReplaceAllString(out, "")
	return trimTrailingBlankLines(out)
}

// replaceMarkers calls fn for each marker that resolves to a source and drops
// the rest, leading whitespace included.
func replaceMarkers(content string, sources []models.Source, fn func(ws string, n int, src models.Source) string) string {
	return markerPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := markerPattern.FindStringSubmatch(match)
		n, err := strconv.Atoi(groups[2])
		if err != nil {
			return ""
		}
		src, ok := models.LookupSource(sources, n)
		if !ok {
			return ""
		}
		return fn(groups[1], n, src)
	})
}

func trimTrailingBlankLines(s string) string {
	for strings.HasSuffix(s, "\n\n") {
		s = strings.TrimSuffix(s, "\n\n")
	}
	return s
}
