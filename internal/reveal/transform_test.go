package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkStreaming(t *testing.T) {
	chunks := Chunk("one two three four five", true)

	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"one two ", "three four ", "five "}, chunks)
	assert.Equal(t, "one two three four five", strings.TrimSuffix(strings.Join(chunks, ""), " "))
}

func TestChunkCounts(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{7, 4},
	}

	for _, tt := range tests {
		words := make([]string, tt.words)
		for i := range words {
			words[i] = "w"
		}
		got := Chunk(strings.Join(words, " "), true)
		assert.Len(t, got, tt.want, "%d words", tt.words)
	}
}

func TestChunkPreservesSpacing(t *testing.T) {
	in := "a  b c"
	chunks := Chunk(in, true)

	assert.Equal(t, in+" ", strings.Join(chunks, ""))
}

func TestChunkNotStreaming(t *testing.T) {
	in := "one two three four five"

	assert.Equal(t, []string{in}, Chunk(in, false))
}

func TestChunkEmpty(t *testing.T) {
	assert.Empty(t, Chunk("", true))
	assert.Empty(t, Chunk("", false))
}

func TestTransformStreamingText(t *testing.T) {
	out := Transform(NewText("one two three four five"), true, "p")

	require.Equal(t, "p", out.Tag)
	require.Len(t, out.Children, 3)
	for i, c := range out.Children {
		span, ok := c.(*Element)
		require.True(t, ok)
		assert.Equal(t, "span", span.Tag)
		assert.True(t, span.HasClass(RevealClass))
		assert.Equal(t, []string{"0-streaming", "1-streaming", "2-streaming"}[i], span.Key)
	}
	assert.Equal(t, []string{"one two ", "three four ", "five "}, Texts(out))
	assert.Equal(t, 3, CountReveal(out))
}

func TestTransformNotStreaming(t *testing.T) {
	out := Transform(NewText("one two three four five"), false, "li")

	require.Equal(t, "li", out.Tag)
	require.Len(t, out.Children, 1)
	span := out.Children[0].(*Element)
	assert.False(t, span.HasClass(RevealClass))
	assert.Empty(t, span.Attrs)
	assert.Equal(t, []string{"one two three four five"}, Texts(out))
	assert.Zero(t, CountReveal(out))
}

func TestTransformPreservesShape(t *testing.T) {
	link := NewElement("a", []Attr{{Key: "href", Val: "https://go.dev"}}, NewText("the go site"))
	link.Key = "k"
	in := NewList(NewText("see"), link, NewElement("strong", nil, NewText("now")))

	out := Transform(in, true, "p")

	require.Len(t, out.Children, 3)
	for i, c := range out.Children {
		frag := c.(*Element)
		assert.True(t, frag.IsFragment())
		assert.Equal(t, []string{"0", "1", "2"}[i], frag.Key)
	}

	clone := out.Children[1].(*Element).Children[0].(*Element)
	assert.Equal(t, "a", clone.Tag)
	assert.Equal(t, "k", clone.Key)
	assert.Equal(t, link.Attrs, clone.Attrs)
	assert.Len(t, clone.Children, 2)
	assert.Equal(t, []string{"see ", "the go ", "site ", "now "}, Texts(out))

	// the input is untouched
	assert.Equal(t, []Node{NewText("the go site")}, link.Children)
	clone.Attrs[0].Val = "changed"
	assert.Equal(t, "https://go.dev", link.Attrs[0].Val)
}

func TestTransformNil(t *testing.T) {
	assert.NotPanics(t, func() {
		out := Transform(nil, true, "p")
		assert.Equal(t, "p", out.Tag)
		assert.Empty(t, out.Children)

		var text *Text
		var el *Element
		var list *List
		assert.Empty(t, Transform(text, true, "p").Children)
		assert.Empty(t, Transform(el, true, "p").Children)
		assert.Empty(t, Transform(list, true, "p").Children)
	})
}

func TestTransformDeterministic(t *testing.T) {
	in := NewList(NewText("a b c"), NewElement("em", nil, NewText("d e f g")))

	assert.Equal(t, Transform(in, true, "p"), Transform(in, true, "p"))
}

func TestWalkSkipsChildren(t *testing.T) {
	tree := NewList(NewElement("p", nil, NewText("hidden")), NewText("shown"))

	var seen []string
	Walk(tree, func(n Node) bool {
		if e, ok := n.(*Element); ok && e.Tag == "p" {
			return false
		}
		if txt, ok := n.(*Text); ok {
			seen = append(seen, txt.Value)
		}
		return true
	})

	assert.Equal(t, []string{"shown"}, seen)
}
