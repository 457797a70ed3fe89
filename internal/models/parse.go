package models

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	apperrors "github.com/diogo/citeview/internal/errors"
)

// ParseMessage parses a message document.
//
// Expected shape:
//
//	{"role": "assistant", "query": "...", "content": "...",
//	 "sources": [{"title": "...", "url": "..."}]}
//
// "search_results" is accepted in place of "sources".
func ParseMessage(data []byte) (Message, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "" || !gjson.Valid(raw) {
		return Message{}, apperrors.NewParseError("document is not valid JSON", "")
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return Message{}, apperrors.NewParseError("document is not an object", "")
	}

	content := parsed.Get("content")
	if !content.Exists() {
		return Message{}, apperrors.ErrNoContent
	}
	if content.Type != gjson.String {
		return Message{}, apperrors.NewParseError("content must be a string", "content")
	}

	msg := Message{
		Role:    parsed.Get("role").String(),
		Query:   parsed.Get("query").String(),
		Content: content.String(),
	}
	if msg.Role == "" {
		msg.Role = RoleAssistant
	}

	sources, err := parseSources(parsed)
	if err != nil {
		return Message{}, err
	}
	msg.Sources = sources

	return msg, nil
}

func parseSources(parsed gjson.Result) ([]Source, error) {
	key := "sources"
	list := parsed.Get(key)
	if !list.Exists() {
		key = "search_results"
		list = parsed.Get(key)
	}
	if !list.Exists() || list.Type == gjson.Null {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, apperrors.NewParseError("must be an array", key)
	}

	var (
		sources []Source
		err     error
	)
	list.ForEach(func(idx, item gjson.Result) bool {
		if !item.IsObject() {
			err = apperrors.NewParseError("source must be an object", fmt.Sprintf("%s.%d", key, idx.Int()))
			return false
		}
		sources = append(sources, Source{
			Title: item.Get("title").String(),
			URL:   item.Get("url").String(),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// LoadMessage reads and parses a message document from disk.
func LoadMessage(path string) (Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("failed to read message file: %w", err)
	}
	return ParseMessage(data)
}
