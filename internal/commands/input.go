package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/diogo/citeview/internal/models"
)

// errNoInput is returned when no file is given and stdin is a terminal.
var errNoInput = errors.New("no input: pass a message file or pipe one on stdin")

// readMessage loads the message named by args. No argument or "-" reads stdin.
func (s *cliState) readMessage(args []string) (models.Message, error) {
	if len(args) > 0 && args[0] != "-" {
		msg, err := models.LoadMessage(args[0])
		if err != nil {
			return models.Message{}, err
		}
		s.logger.Debug("message loaded", "path", args[0], "sources", len(msg.Sources))
		return msg, nil
	}

	in := s.deps.Stdin
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return models.Message{}, errNoInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	msg, err := models.ParseMessage(data)
	if err != nil {
		return models.Message{}, err
	}
	s.logger.Debug("message loaded", "path", "-", "sources", len(msg.Sources))
	return msg, nil
}
