// Package clipboard copies answer text to the system clipboard, falling back
// to an OSC 52 terminal sequence when no system clipboard is available.
package clipboard

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	apperrors "github.com/diogo/citeview/internal/errors"
)

// Backend is one way of writing to the clipboard.
type Backend interface {
	// Name identifies the backend in logs and errors.
	Name() string
	// Available reports whether the capability exists in this environment.
	Available() bool
	Write(text string) error
}

// System writes through the platform clipboard (pbcopy, xclip, wl-copy, ...).
type System struct{}

// Name implements Backend.
func (System) Name() string { return "system" }

// Available implements Backend.
func (System) Available() bool { return !sysclip.Unsupported }

// Write implements Backend.
func (System) Write(text string) error { return sysclip.WriteAll(text) }

// Opener returns a transient terminal handle.
type Opener func() (io.WriteCloser, error)

// OSC52 writes an OSC 52 escape sequence to the controlling terminal.
type OSC52 struct {
	// Open returns the terminal to write to. Defaults to /dev/tty.
	Open Opener
	// Getenv reads TMUX and TERM. Defaults to os.Getenv.
	Getenv func(string) string
}

// Name implements Backend.
func (OSC52) Name() string { return "osc52" }

// Available implements Backend.
func (OSC52) Available() bool { return true }

// Write implements Backend. The terminal handle is opened and released on
// every call, whatever the outcome of the write.
func (o OSC52) Write(text string) (err error) {
	open := o.Open
	if open == nil {
		open = openTTY
	}
	w, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	_, err = o.sequence(text).WriteTo(w)
	return err
}

func (o OSC52) sequence(text string) osc52.Sequence {
	getenv := o.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	seq := osc52.New(text)
	term := getenv("TERM")
	switch {
	case getenv("TMUX") != "" || strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	return seq
}

func openTTY() (io.WriteCloser, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w: %w", apperrors.ErrClipboardUnavailable, err)
	}
	return tty, nil
}

// Clipboard tries the primary backend when it is available and the fallback
// only when it is not.
type Clipboard struct {
	primary         Backend
	fallback        Backend
	fallbackOnError bool
	logger          *slog.Logger
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithPrimary replaces the system backend.
func WithPrimary(b Backend) Option {
	return func(c *Clipboard) { c.primary = b }
}

// WithFallback replaces the OSC 52 backend.
func WithFallback(b Backend) Option {
	return func(c *Clipboard) { c.fallback = b }
}

// WithFallbackOnError also uses the fallback when the primary write fails.
func WithFallbackOnError(enabled bool) Option {
	return func(c *Clipboard) { c.fallbackOnError = enabled }
}

// WithLogger sets the logger used for failed writes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Clipboard) { c.logger = logger }
}

// New creates a Clipboard backed by the system clipboard and OSC 52.
func New(opts ...Option) *Clipboard {
	c := &Clipboard{
		primary:  System{},
		fallback: OSC52{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Copy writes text and returns the name of the backend that succeeded.
// A primary failure is logged and returned without trying the fallback
// unless WithFallbackOnError is set.
func (c *Clipboard) Copy(text string) (string, error) {
	if c.primary != nil && c.primary.Available() {
		err := c.primary.Write(text)
		if err == nil {
			c.logger.Debug("clipboard write", "method", c.primary.Name(), "bytes", len(text))
			return c.primary.Name(), nil
		}
		c.logger.Warn("clipboard write failed", "method", c.primary.Name(), "error", err)
		if !c.fallbackOnError {
			return "", apperrors.NewClipboardError(c.primary.Name(), err)
		}
	}

	if c.fallback == nil || !c.fallback.Available() {
		return "", apperrors.NewClipboardError("none", apperrors.ErrClipboardUnavailable)
	}
	if err := c.fallback.Write(text); err != nil {
		c.logger.Warn("clipboard write failed", "method", c.fallback.Name(), "error", err)
		return "", apperrors.NewClipboardError(c.fallback.Name(), err)
	}
	c.logger.Debug("clipboard write", "method", c.fallback.Name(), "bytes", len(text))
	return c.fallback.Name(), nil
}
