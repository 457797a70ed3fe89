package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	err := NewParseError("unexpected token", "sources.0.url")

	expected := "parse error at sources.0.url: unexpected token"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInvalidMessage) {
		t.Error("Expected ParseError to match ErrInvalidMessage")
	}

	if !err.Is(NewParseError("other", "")) {
		t.Error("Expected error to match another ParseError")
	}

	if err.Is(errors.New("standard error")) {
		t.Error("Expected error not to match standard error")
	}
}

func TestParseErrorWithoutPath(t *testing.T) {
	err := NewParseError("not json", "")

	expected := "parse error: not json"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestClipboardError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewClipboardError("system", cause)

	expected := "clipboard write via system failed: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, cause) {
		t.Error("Expected ClipboardError to unwrap to its cause")
	}

	if errors.Is(err, ErrClipboardUnavailable) {
		t.Error("Expected permission failure not to match ErrClipboardUnavailable")
	}
}

func TestClipboardErrorUnavailable(t *testing.T) {
	err := NewClipboardError("osc52", fmt.Errorf("open tty: %w", ErrClipboardUnavailable))

	if !errors.Is(err, ErrClipboardUnavailable) {
		t.Error("Expected wrapped unavailability to match ErrClipboardUnavailable")
	}

	if NewClipboardError("system", nil).Error() != "clipboard write via system failed" {
		t.Errorf("unexpected message for nil cause: %s", NewClipboardError("system", nil).Error())
	}
}

func TestRenderError(t *testing.T) {
	cause := errors.New("bad html")
	err := NewRenderError("html", cause)

	expected := "render error in html: bad html"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrRenderFailed) {
		t.Error("Expected RenderError to match ErrRenderFailed")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected RenderError to unwrap to its cause")
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("theme", "unknown theme")

	expected := `config error for "theme": unknown theme`
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		isParse     bool
		isClipboard bool
	}{
		{"parse error", NewParseError("x", ""), true, false},
		{"wrapped parse error", fmt.Errorf("load: %w", NewParseError("x", "")), true, false},
		{"clipboard error", NewClipboardError("system", nil), false, true},
		{"plain error", errors.New("plain"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParseError(tt.err); got != tt.isParse {
				t.Errorf("IsParseError() = %v, want %v", got, tt.isParse)
			}
			if got := IsClipboardError(tt.err); got != tt.isClipboard {
				t.Errorf("IsClipboardError() = %v, want %v", got, tt.isClipboard)
			}
		})
	}
}
