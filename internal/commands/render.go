package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	apperrors "github.com/diogo/citeview/internal/errors"
	"github.com/diogo/citeview/internal/render"
)

// Output formats accepted by render --format.
const (
	formatTerminal = "terminal"
	formatHTML     = "html"
	formatRich     = "rich"
	formatPlain    = "plain"
	formatDisplay  = "display"
)

var renderFormats = []string{formatTerminal, formatHTML, formatRich, formatPlain, formatDisplay}

type renderFlags struct {
	format    string
	streaming bool
	width     int
	raw       bool
	output    string
}

func newRenderCmd(state *cliState) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an answer with its citations",
		Long: `Render an answer document.

Formats:
  terminal  styled answer with citation hyperlinks (default)
  html      HTML fragment with citation anchors and reveal spans
  rich      markdown with [n](url) links and a reference list
  plain     text without markers or the trailing references section
  display   processed markdown with citation widgets

Use "-" or no file to read the document from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", formatTerminal, "Output format ("+strings.Join(renderFormats, ", ")+")")
	cmd.Flags().BoolVar(&flags.streaming, "streaming", false, "Render as a message still streaming in")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "Wrap width (0 uses the terminal width)")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "Disable styling")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write output to file")

	return cmd
}

func (s *cliState) runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	msg, err := s.readMessage(args)
	if err != nil {
		return err
	}

	answer, err := render.RenderAnswer(msg, flags.streaming)
	if err != nil {
		return err
	}

	width := flags.width
	if width <= 0 {
		width = s.deps.TerminalWidth()
	}
	styled := !flags.raw && flags.output == "" && isStdoutTTY()

	var out string
	switch flags.format {
	case formatTerminal:
		out = answer.Terminal(render.TerminalOptionsFor(render.GetTUITheme(), width))
		if flags.raw {
			out = ansi.Strip(out)
		}
	case formatHTML:
		out, err = answer.HTML()
		if err != nil {
			return err
		}
	case formatRich:
		out = answer.Result.RichCopy
		if styled {
			opts := render.OptionsFromConfig(s.cfg).WithWidth(width)
			if rendered, err := render.Markdown(out, opts); err != nil {
				s.logger.Warn("glamour render failed, writing markdown", "error", err)
			} else {
				out = rendered
			}
		}
	case formatPlain:
		out = answer.Result.PlainCopy
	case formatDisplay:
		out = answer.Result.Display
	default:
		return apperrors.NewRenderError("format",
			fmt.Errorf("unknown format %q (want one of %s)", flags.format, strings.Join(renderFormats, ", ")))
	}

	s.logger.Info("answer rendered",
		"format", flags.format,
		"streaming", flags.streaming,
		"cited", len(answer.Result.Cited),
		"reveal_spans", answer.RevealCount(),
	)

	return writeOutput(cmd.OutOrStdout(), flags.output, out)
}

// writeOutput writes out to path, or to w when path is empty.
func writeOutput(w io.Writer, path, out string) error {
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if path == "" {
		_, err := io.WriteString(w, out)
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
