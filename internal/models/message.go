// Package models defines the chat message types displayed by citeview.
package models

// Role values for a Message
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Source is a cited web result. Sources are 1-indexed by position when
// correlated with citation markers in the message content.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Message represents a chat answer for display.
// It is replaced wholesale on update; nothing mutates it in place.
type Message struct {
	Role    string   `json:"role"`
	Query   string   `json:"query,omitempty"`
	Content string   `json:"content"`
	Sources []Source `json:"sources,omitempty"`
}

// SourceAt returns the source cited by the 1-based marker number n.
func (m Message) SourceAt(n int) (Source, bool) {
	return LookupSource(m.Sources, n)
}

// LookupSource returns sources[n-1] when n is in range.
func LookupSource(sources []Source, n int) (Source, bool) {
	if n < 1 || n > len(sources) {
		return Source{}, false
	}
	return sources[n-1], true
}

// WithContent returns a copy of the message with new content.
// Sources are shared since they are never mutated.
func (m Message) WithContent(content string) Message {
	m.Content = content
	return m
}

// WithQuery returns a copy of the message with a new query.
func (m Message) WithQuery(query string) Message {
	m.Query = query
	return m
}
