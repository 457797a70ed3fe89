package commands

import (
	"github.com/spf13/cobra"
)

func newViewCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Open an answer in the interactive view",
		Long: `Open an answer in the interactive view.

The answer streams in word by word, then the action bar appears:
  r  rewrite (replay the stream)
  c  copy the answer with citation links
  p  copy plain text
  e  edit the question
  q  quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := state.readMessage(args)
			if err != nil {
				return err
			}
			copier := state.deps.NewCopier(state.cfg, state.logger)
			return state.deps.TUI.RunAnswerView(msg, copier, state.cfg, state.logger)
		},
	}
}
