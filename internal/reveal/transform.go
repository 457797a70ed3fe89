package reveal

import (
	"strconv"
	"strings"
)

// WordsPerChunk is the number of words revealed at a time while streaming.
const WordsPerChunk = 2

// RevealClass marks a chunk span that fades in.
const RevealClass = "reveal"

// Chunk splits s for display. While streaming, s is split on single spaces
// and regrouped into WordsPerChunk-word chunks, each ending in a space, so N
// words give ceil(N/2) chunks. Otherwise s is a single chunk.
func Chunk(s string, streaming bool) []string {
	if s == "" {
		return nil
	}
	if !streaming {
		return []string{s}
	}

	words := strings.Split(s, " ")
	chunks := make([]string, 0, (len(words)+WordsPerChunk-1)/WordsPerChunk)
	for i := 0; i < len(words); i += WordsPerChunk {
		end := min(i+WordsPerChunk, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " ")+" ")
	}
	return chunks
}

// Transform wraps node in a container element, splitting every text leaf
// into keyed chunk spans. Elements keep their tag, key and attributes; list
// items keep their order and are keyed by position. A nil node yields an
// empty container.
func Transform(node Node, streaming bool, container string) *Element {
	return &Element{
		Tag:      container,
		Children: transform(node, streaming),
	}
}

func transform(node Node, streaming bool) []Node {
	switch n := node.(type) {
	case *Text:
		if n == nil {
			return nil
		}
		return chunkSpans(n.Value, streaming)

	case *Element:
		if n == nil {
			return nil
		}
		clone := &Element{
			Tag:   n.Tag,
			Key:   n.Key,
			Attrs: append([]Attr(nil), n.Attrs...),
		}
		for _, child := range n.Children {
			clone.Children = append(clone.Children, transform(child, streaming)...)
		}
		return []Node{clone}

	case *List:
		if n == nil {
			return nil
		}
		out := make([]Node, 0, len(n.Items))
		for i, item := range n.Items {
			out = append(out, &Element{
				Key:      strconv.Itoa(i),
				Children: transform(item, streaming),
			})
		}
		return out
	}
	return nil
}

func chunkSpans(s string, streaming bool) []Node {
	chunks := Chunk(s, streaming)
	spans := make([]Node, 0, len(chunks))
	for i, chunk := range chunks {
		span := &Element{
			Tag:      "span",
			Key:      strconv.Itoa(i) + "-streaming",
			Children: []Node{&Text{Value: chunk}},
		}
		if streaming {
			span.Attrs = []Attr{{Key: "class", Val: RevealClass}}
		}
		spans = append(spans, span)
	}
	return spans
}
