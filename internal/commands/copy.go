package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/citeview/internal/citation"
)

func newCopyCmd(state *cliState) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Copy an answer to the clipboard",
		Long: `Copy an answer to the clipboard.

By default the markdown form is copied: citation markers become [n](url)
links and a reference list is appended. With --plain the markers and the
trailing references section are removed instead.

The system clipboard is used when available, otherwise the text is sent
to the terminal with an OSC 52 escape sequence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := state.readMessage(args)
			if err != nil {
				return err
			}

			result := citation.ProcessMessage(msg)
			text, what := result.Text(), "answer"
			if plain {
				text, what = result.PlainText(), "plain text"
			}

			copier := state.deps.NewCopier(state.cfg, state.logger)
			method, err := copier.Copy(text)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Copied %s via %s (%d bytes)\n", what, method, len(text))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&plain, "plain", "p", false, "Copy plain text without citations")

	return cmd
}
