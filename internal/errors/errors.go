// Package errors provides custom error types for citeview.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidMessage       = errors.New("invalid message document")
	ErrNoContent            = errors.New("no content in message")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrRenderFailed         = errors.New("render failed")
)

// ParseError represents a message document parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidMessage {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// ClipboardError represents a failed clipboard write.
// Method names the strategy that failed ("system" or "osc52").
type ClipboardError struct {
	Method string
	Err    error
}

func (e *ClipboardError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("clipboard write via %s failed", e.Method)
	}
	return fmt.Sprintf("clipboard write via %s failed: %v", e.Method, e.Err)
}

// Unwrap returns the underlying error
func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *ClipboardError) Is(target error) bool {
	if target == ErrClipboardUnavailable {
		return errors.Is(e.Err, ErrClipboardUnavailable)
	}
	_, ok := target.(*ClipboardError)
	return ok
}

// NewClipboardError creates a new ClipboardError
func NewClipboardError(method string, err error) *ClipboardError {
	return &ClipboardError{Method: method, Err: err}
}

// RenderError represents a failure in the answer rendering pipeline
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}

// NewRenderError creates a new RenderError
func NewRenderError(stage string, err error) *RenderError {
	return &RenderError{Stage: stage, Err: err}
}

// ConfigError represents an invalid configuration key or value
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for %q: %s", e.Key, e.Message)
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsClipboardError checks if an error is a clipboard error
func IsClipboardError(err error) bool {
	var clipErr *ClipboardError
	return errors.As(err, &clipErr)
}
