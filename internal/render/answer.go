package render

import (
	"bytes"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/diogo/citeview/internal/citation"
	apperrors "github.com/diogo/citeview/internal/errors"
	"github.com/diogo/citeview/internal/models"
	"github.com/diogo/citeview/internal/reveal"
)

// Answer is a processed message ready for display.
type Answer struct {
	// Tree is the display markdown as a node tree, with paragraph and list
	// item text split into reveal chunks.
	Tree   *reveal.List
	Result citation.Result
}

// HTML renders the tree as an HTML fragment.
func (a *Answer) HTML() (string, error) {
	out, err := reveal.RenderHTML(a.Tree)
	if err != nil {
		return "", apperrors.NewRenderError("html", err)
	}
	return out, nil
}

// Terminal renders the tree as styled terminal text.
func (a *Answer) Terminal(opts reveal.TerminalOptions) string {
	return reveal.RenderTerminal(a.Tree, opts)
}

// RevealCount returns the number of chunks that fade in.
func (a *Answer) RevealCount() int {
	return reveal.CountReveal(a.Tree)
}

// AnswerRenderer runs a message through citation processing, markdown
// conversion and the reveal transform.
type AnswerRenderer struct {
	processor *citation.Processor
	md        goldmark.Markdown
}

// NewAnswerRenderer returns a renderer that draws citations with widget.
// The widget output is raw HTML and is passed through unescaped.
func NewAnswerRenderer(widget citation.Widget) *AnswerRenderer {
	return &AnswerRenderer{
		processor: citation.NewProcessor(widget),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

var defaultAnswerRenderer = NewAnswerRenderer(citation.HTMLWidget{})

// RenderAnswer renders msg with the default citation widget.
func RenderAnswer(msg models.Message, streaming bool) (*Answer, error) {
	return defaultAnswerRenderer.Render(msg, streaming)
}

// Render processes msg. With streaming set, paragraph and list item text is
// split into two-word spans that fade in.
func (r *AnswerRenderer) Render(msg models.Message, streaming bool) (*Answer, error) {
	result := r.processor.Process(msg.Content, msg.Sources)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(result.Display), &buf); err != nil {
		return nil, apperrors.NewRenderError("markdown", err)
	}

	tree, err := reveal.FromHTML(buf.String())
	if err != nil {
		return nil, apperrors.NewRenderError("html", err)
	}
	for i, item := range tree.Items {
		tree.Items[i] = transformBlocks(item, streaming)
	}

	return &Answer{Tree: tree, Result: result}, nil
}

// transformBlocks replaces each outermost p and li element with its
// transformed form. Anything nested inside is handled by the transform.
func transformBlocks(n reveal.Node, streaming bool) reveal.Node {
	el, ok := n.(*reveal.Element)
	if !ok || el == nil {
		return n
	}
	switch el.Tag {
	case "p", "li":
		out := reveal.Transform(&reveal.List{Items: el.Children}, streaming, el.Tag)
		out.Key = el.Key
		out.Attrs = append([]reveal.Attr(nil), el.Attrs...)
		return out
	}
	for i, c := range el.Children {
		el.Children[i] = transformBlocks(c, streaming)
	}
	return el
}

// TerminalOptionsFor returns terminal options colored with theme.
func TerminalOptionsFor(theme TUITheme, width int) reveal.TerminalOptions {
	opts := reveal.DefaultTerminalOptions()
	opts.Width = width
	opts.Styles = reveal.TerminalStyles{
		Text:     lipgloss.NewStyle().Foreground(theme.Text),
		Fade:     lipgloss.NewStyle().Foreground(theme.Reveal),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Strong:   lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Code:     lipgloss.NewStyle().Foreground(theme.Warning),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(theme.Secondary),
		Citation: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Bullet:   lipgloss.NewStyle().Foreground(theme.TextDim),
		Quote:    lipgloss.NewStyle().Italic(true).Foreground(theme.TextDim),
	}
	return opts
}
